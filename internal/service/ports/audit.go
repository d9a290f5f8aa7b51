package ports

import (
	"context"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

// AuditSink receives structured events for downstream analytics.
// Delivery is best effort; implementations log failures and never
// block the booking path.
type AuditSink interface {
	LockAcquired(ctx context.Context, e domain.LockEvent)
	LockExtended(ctx context.Context, e domain.LockEvent)
	LockReleased(ctx context.Context, e domain.LockEvent)
	BookingConfirmed(ctx context.Context, e domain.BookingEvent)
}
