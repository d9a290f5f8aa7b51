package ports

import (
	"context"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

type ItemRepo interface {
	GetByID(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error)
	// AdjustCapacity applies a permanent delta to the item's capacity
	// field. Used only when a lock is converted into a booking.
	AdjustCapacity(ctx context.Context, kind domain.ItemKind, itemID string, delta int) error
}
