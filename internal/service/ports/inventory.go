package ports

import (
	"context"
	"time"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

type InventoryLedger interface {
	GetInventory(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time) (int, error)
	// UpdateInventory applies delta to the cached count. With
	// permanent set it instead writes through to the item record and
	// invalidates the cache; only the confirmation path uses that.
	UpdateInventory(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time, delta int, permanent bool) error
	GetLockedCount(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time) (int, error)
}
