// Package notify contains outbound notification adapters.
package notify

import (
	"context"
	"log/slog"
	"time"

	"fooddonation/internal/core/domain/model/kernel"
)

// OTPLogNotifier writes issued pickup codes to the structured log.
// Stands in for an SMS or email gateway in environments without one.
// The code itself is logged, so this adapter is for development only.
type OTPLogNotifier struct {
	logger *slog.Logger
}

// NewOTPLogNotifier creates a notifier that logs OTP deliveries.
func NewOTPLogNotifier(logger *slog.Logger) *OTPLogNotifier {
	return &OTPLogNotifier{logger: logger.With("component", "otp_notifier")}
}

// Notify logs the issued code for the donation.
func (n *OTPLogNotifier) Notify(ctx context.Context, donationID kernel.UUID, code string, expiresAt time.Time) error {
	n.logger.InfoContext(ctx, "Pickup OTP issued",
		"donation_id", donationID.String(),
		"code", code,
		"expires_at", expiresAt.Format(time.RFC3339),
	)
	return nil
}
