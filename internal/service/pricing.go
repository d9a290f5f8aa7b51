package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/domain"
	"github.com/anagha-safaar/booking-engine/internal/service/ports"
)

// Demand varies within [1.0, 1.25) plus a weekend surcharge.
const (
	demandSpread    = 0.25
	weekendDemand   = 0.10
	advanceFloor    = 0.8
	advancePerDay   = 0.01
	nightDiscount   = 0.95
	eveningSurge    = 1.10
	eveningFromHour = 18
	nightUntilHour  = 6
)

// seasonalByMonth reflects travel seasonality: winter peak, spring
// shoulder, monsoon trough, autumn festival uptick.
var seasonalByMonth = map[time.Month]float64{
	time.January:   1.25,
	time.February:  1.10,
	time.March:     1.10,
	time.April:     1.00,
	time.May:       1.00,
	time.June:      0.95,
	time.July:      0.90,
	time.August:    0.90,
	time.September: 0.95,
	time.October:   1.15,
	time.November:  1.15,
	time.December:  1.25,
}

// PricingService produces short-lived cached quotes. Time and
// randomness come in through ports so quotes are reproducible under
// test.
type PricingService struct {
	items  ports.ItemRepo
	cache  ports.Cache
	clock  ports.Clock
	rand   ports.Rand
	ttl    time.Duration
	logger logger.Logger
}

func NewPricingService(
	items ports.ItemRepo,
	cache ports.Cache,
	clock ports.Clock,
	rnd ports.Rand,
	ttl time.Duration,
	log logger.Logger,
) *PricingService {
	return &PricingService{
		items:  items,
		cache:  cache,
		clock:  clock,
		rand:   rnd,
		ttl:    ttl,
		logger: log,
	}
}

func (s *PricingService) GetDynamicPricing(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time) (*domain.DynamicPricing, error) {
	date = dateOnly(date)
	key := pricingCacheKey(kind, itemID, date)

	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("pricing cache read failed, recomputing",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	} else if raw != nil {
		var quote domain.DynamicPricing
		if err := json.Unmarshal(raw, &quote); err == nil {
			return &quote, nil
		}
		s.logger.Warn("corrupt pricing cache entry dropped", logger.String("key", key))
	}

	item, err := s.items.GetByID(ctx, kind, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %s", domain.ErrPricingUnavailable, kind, itemID, err)
	}

	quote := s.compute(item, date)

	if raw, err := json.Marshal(quote); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("pricing cache write failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}

	return quote, nil
}

func (s *PricingService) compute(item *domain.Item, date time.Time) *domain.DynamicPricing {
	now := s.clock.Now().UTC()

	demand := 1.0 + s.rand.Float64()*demandSpread
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		demand += weekendDemand
	}

	seasonal := seasonalByMonth[date.Month()]

	timeOfDay := 1.0
	switch {
	case now.Hour() >= eveningFromHour:
		timeOfDay = eveningSurge
	case now.Hour() < nightUntilHour:
		timeOfDay = nightDiscount
	}

	// Reported but never folded into FinalPrice; callers that honor
	// the discount multiply it in themselves.
	daysAhead := int(date.Sub(dateOnly(now)).Hours() / 24)
	advance := 1.0
	if daysAhead > 0 {
		advance = math.Max(advanceFloor, 1.0-advancePerDay*float64(daysAhead))
	}

	final := math.Round(item.BasePrice * demand * seasonal * timeOfDay)

	return &domain.DynamicPricing{
		ItemKind:  item.Kind,
		ItemID:    item.ID,
		Date:      date,
		BasePrice: item.BasePrice,
		Multipliers: domain.Multipliers{
			Demand:         demand,
			Seasonal:       seasonal,
			TimeOfDay:      timeOfDay,
			AdvanceBooking: advance,
		},
		FinalPrice: final,
		Currency:   item.Currency,
		ComputedAt: now,
	}
}

func pricingCacheKey(kind domain.ItemKind, itemID string, date time.Time) string {
	return fmt.Sprintf("booking:pricing:%s:%s:%s", kind, itemID, dateKey(date))
}
