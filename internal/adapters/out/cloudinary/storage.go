// Package cloudinary provides media storage backed by the Cloudinary API.
// Proof-of-delivery photos are uploaded here and referenced by URL from
// completed donations.
package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const proofFolder = "donation-proofs"

// ProofImageStorage uploads proof images to Cloudinary and returns their
// public URLs. Implements ports.ProofStorage.
type ProofImageStorage struct {
	client *cloudinary.Cloudinary
}

// NewProofImageStorage creates a Cloudinary-backed storage from API credentials.
func NewProofImageStorage(cloudName, apiKey, apiSecret string) (*ProofImageStorage, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}

	return &ProofImageStorage{client: client}, nil
}

// Store uploads the file and returns its secure URL.
// The name is used as the public ID inside the proof folder, so repeated
// uploads of the same name overwrite instead of accumulating.
func (s *ProofImageStorage) Store(ctx context.Context, file io.Reader, name string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   proofFolder,
		PublicID: name,
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}

	return resp.SecureURL, nil
}
