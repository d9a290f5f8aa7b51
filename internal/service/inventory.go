package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/domain"
	"github.com/anagha-safaar/booking-engine/internal/service/ports"
)

// InventoryService maintains the cached per-(item, date) availability
// count. The item record's capacity field stays authoritative: the
// cache is advisory and every miss falls back to a reload, so
// provisional deltas can never leak into durable state.
type InventoryService struct {
	items  ports.ItemRepo
	store  ports.LockStore
	cache  ports.Cache
	clock  ports.Clock
	ttl    time.Duration
	logger logger.Logger
}

func NewInventoryService(
	items ports.ItemRepo,
	store ports.LockStore,
	cache ports.Cache,
	clock ports.Clock,
	ttl time.Duration,
	log logger.Logger,
) *InventoryService {
	return &InventoryService{
		items:  items,
		store:  store,
		cache:  cache,
		clock:  clock,
		ttl:    ttl,
		logger: log,
	}
}

func (s *InventoryService) GetInventory(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time) (int, error) {
	key := inventoryCacheKey(kind, itemID, date)

	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("inventory cache read failed, reloading",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	} else if raw != nil {
		if n, err := strconv.Atoi(string(raw)); err == nil {
			return n, nil
		}
		s.logger.Warn("corrupt inventory cache entry dropped", logger.String("key", key))
	}

	item, err := s.items.GetByID(ctx, kind, itemID)
	if err != nil {
		return 0, fmt.Errorf("load capacity: %w", err)
	}

	if err := s.cache.Set(ctx, key, []byte(strconv.Itoa(item.Capacity)), s.ttl); err != nil {
		s.logger.Warn("inventory cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}

	return item.Capacity, nil
}

func (s *InventoryService) UpdateInventory(ctx context.Context, kind domain.ItemKind, itemID string, date time.Time, delta int, permanent bool) error {
	if permanent {
		if err := s.items.AdjustCapacity(ctx, kind, itemID, delta); err != nil {
			return fmt.Errorf("%w: adjust capacity: %s", domain.ErrPersistenceFailure, err)
		}
		// Capacity changed underneath the cached count; drop it so the
		// next read reloads from the item record.
		if err := s.cache.Delete(ctx, inventoryCacheKey(kind, itemID, date)); err != nil {
			s.logger.Warn("inventory cache invalidation failed",
				logger.String("item_id", itemID),
				logger.String("error", err.Error()),
			)
		}
		return nil
	}

	current, err := s.GetInventory(ctx, kind, itemID, date)
	if err != nil {
		return err
	}

	key := inventoryCacheKey(kind, itemID, date)
	if err := s.cache.Set(ctx, key, []byte(strconv.Itoa(current+delta)), s.ttl); err != nil {
		return fmt.Errorf("%w: store count: %s", domain.ErrPersistenceFailure, err)
	}

	return nil
}

func (s *InventoryService) GetLockedCount(ctx context.Context, kind domain.ItemKind, itemID string, _ time.Time) (int, error) {
	lock, err := s.store.GetLock(ctx, kind, itemID)
	if err != nil {
		return 0, fmt.Errorf("count active locks: %w", err)
	}
	if lock == nil || lock.Expired(s.clock.Now()) {
		return 0, nil
	}
	// Exclusivity is per item, so the count is 0 or 1 today; kept as
	// a count so a per-date lock model can slot in without touching
	// callers.
	return 1, nil
}

func inventoryCacheKey(kind domain.ItemKind, itemID string, date time.Time) string {
	return fmt.Sprintf("booking:inventory:%s:%s:%s", kind, itemID, dateKey(date))
}
