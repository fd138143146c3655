package ports

import (
	"context"
	"io"
)

// ProofStorage persists completion proof images and returns a stable URL
// for each stored file.
type ProofStorage interface {
	Store(ctx context.Context, file io.Reader, name string) (string, error)
}
