package ports

import (
	"context"
	"time"

	"fooddonation/internal/core/domain/model/kernel"
)

// OTPNotifier hands a freshly issued pickup code to the out-of-band delivery
// channel (SMS, email). The orchestrator never returns the code to API callers.
type OTPNotifier interface {
	Notify(ctx context.Context, donationID kernel.UUID, code string, expiresAt time.Time) error
}
