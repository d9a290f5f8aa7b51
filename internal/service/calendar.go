package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/domain"
	"github.com/anagha-safaar/booking-engine/internal/service/ports"
)

// CalendarService assembles per-date availability and pricing for
// display. One date's lookup failing degrades that entry only, never
// the whole range.
type CalendarService struct {
	inventory ports.InventoryLedger
	pricing   ports.PricingEngine
	cache     ports.Cache
	ttl       time.Duration
	logger    logger.Logger
}

func NewCalendarService(
	inventory ports.InventoryLedger,
	pricing ports.PricingEngine,
	cache ports.Cache,
	ttl time.Duration,
	log logger.Logger,
) *CalendarService {
	return &CalendarService{
		inventory: inventory,
		pricing:   pricing,
		cache:     cache,
		ttl:       ttl,
		logger:    log,
	}
}

func (s *CalendarService) GetCalendarAvailability(ctx context.Context, kind domain.ItemKind, itemID string, startDate, endDate time.Time) ([]domain.CalendarDay, error) {
	start := dateOnly(startDate)
	end := dateOnly(endDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}

	key := calendarCacheKey(kind, itemID, start, end)
	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("calendar cache read failed, rebuilding",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	} else if raw != nil {
		var days []domain.CalendarDay
		if err := json.Unmarshal(raw, &days); err == nil {
			return days, nil
		}
		s.logger.Warn("corrupt calendar cache entry dropped", logger.String("key", key))
	}

	var days []domain.CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, s.buildDay(ctx, kind, itemID, d))
	}

	if raw, err := json.Marshal(days); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("calendar cache write failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}

	return days, nil
}

func (s *CalendarService) buildDay(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time) domain.CalendarDay {
	inv, err := s.inventory.GetInventory(ctx, kind, itemID, date)
	if err != nil {
		s.logger.Warn("inventory lookup degraded to zero",
			logger.String("item_id", itemID),
			logger.String("date", dateKey(date)),
			logger.String("error", err.Error()),
		)
		inv = 0
	}

	locked, err := s.inventory.GetLockedCount(ctx, kind, itemID, date)
	if err != nil {
		s.logger.Warn("locked count degraded to zero",
			logger.String("item_id", itemID),
			logger.String("date", dateKey(date)),
			logger.String("error", err.Error()),
		)
		locked = 0
	}

	day := domain.CalendarDay{
		Date:      date,
		Available: inv > locked,
		Inventory: inv,
		Locked:    locked,
	}

	quote, err := s.pricing.GetDynamicPricing(ctx, kind, itemID, date)
	if err != nil {
		s.logger.Warn("pricing degraded to zero",
			logger.String("item_id", itemID),
			logger.String("date", dateKey(date)),
			logger.String("error", err.Error()),
		)
		return day
	}
	day.Price = quote.FinalPrice
	day.Currency = quote.Currency

	return day
}

func calendarCacheKey(kind domain.ItemKind, itemID string, start, end time.Time) string {
	return fmt.Sprintf("booking:calendar:%s:%s:%s:%s", kind, itemID, dateKey(start), dateKey(end))
}
