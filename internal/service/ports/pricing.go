package ports

import (
	"context"
	"time"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

type PricingEngine interface {
	GetDynamicPricing(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time) (*domain.DynamicPricing, error)
}
