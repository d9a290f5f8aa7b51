package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/domain"
	"github.com/anagha-safaar/booking-engine/internal/service/ports"
)

// Taxes and a flat convenience fee are added on top of the dynamic
// price when the lock's pricing snapshot is frozen.
const (
	taxRate    = 0.12
	serviceFee = 49.0
)

// Alphabet for booking reference suffixes; ambiguous glyphs removed.
const referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
const referencePrefix = "ASF"

type LockSettings struct {
	TTL           time.Duration
	ExtensionTTL  time.Duration
	MaxExtensions int
	RelockPolicy  domain.RelockPolicy
}

type LockInput struct {
	ItemKind  domain.ItemKind
	ItemID    string
	UserID    string
	SessionID string
	Metadata  domain.LockMetadata
}

// LockService guarantees at most one party holds a hold on an item at
// a time. Acquisition is a single conditional write against the
// shared store; everything else hangs off that.
type LockService struct {
	store     ports.LockStore
	items     ports.ItemRepo
	bookings  ports.BookingRepo
	pricing   ports.PricingEngine
	inventory ports.InventoryLedger
	audit     ports.AuditSink
	clock     ports.Clock
	rand      ports.Rand
	settings  LockSettings
	logger    logger.Logger
}

func NewLockService(
	store ports.LockStore,
	items ports.ItemRepo,
	bookings ports.BookingRepo,
	pricing ports.PricingEngine,
	inventory ports.InventoryLedger,
	audit ports.AuditSink,
	clock ports.Clock,
	rnd ports.Rand,
	settings LockSettings,
	log logger.Logger,
) *LockService {
	return &LockService{
		store:     store,
		items:     items,
		bookings:  bookings,
		pricing:   pricing,
		inventory: inventory,
		audit:     audit,
		clock:     clock,
		rand:      rnd,
		settings:  settings,
		logger:    log,
	}
}

func (s *LockService) LockItem(ctx context.Context, input LockInput) (*domain.BookingLock, error) {
	if input.ItemID == "" || input.UserID == "" {
		return nil, fmt.Errorf("%w: item_id and user_id are required", domain.ErrValidation)
	}
	if !validKind(input.ItemKind) {
		return nil, fmt.Errorf("%w: unknown item kind %q", domain.ErrValidation, input.ItemKind)
	}

	item, err := s.items.GetByID(ctx, input.ItemKind, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}

	now := s.clock.Now().UTC()
	today := dateOnly(now)

	quote, err := s.pricing.GetDynamicPricing(ctx, input.ItemKind, input.ItemID, today)
	if err != nil {
		return nil, fmt.Errorf("quote item: %w", err)
	}

	lock := &domain.BookingLock{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		SessionID:   input.SessionID,
		ItemKind:    input.ItemKind,
		ItemID:      input.ItemID,
		ItemName:    item.Name,
		ItemDetails: item.Details,
		Pricing:     snapshot(quote),
		Metadata:    input.Metadata,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.settings.TTL),
	}

	prev, acquired, err := s.store.AcquireLock(ctx, lock, now, s.settings.TTL)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire lock: %s", domain.ErrPersistenceFailure, err)
	}
	if !acquired {
		if prev != nil && prev.UserID == input.UserID && s.settings.RelockPolicy == domain.RelockReturnExisting {
			return prev, nil
		}
		return nil, domain.ErrAlreadyLocked
	}

	// The store replaced a logically expired lock the sweep had not
	// reached yet; settle its inventory before counting ours.
	if prev != nil {
		s.restoreInventory(ctx, prev)
		s.emitRelease(ctx, prev, domain.ReleaseReasonExpired, now)
	}

	if err := s.inventory.UpdateInventory(ctx, input.ItemKind, input.ItemID, today, -1, false); err != nil {
		if _, delErr := s.store.DeleteLock(ctx, input.ItemKind, input.ItemID, lock.ID); delErr != nil {
			s.logger.Error("failed to roll back lock after inventory error",
				logger.String("lock_id", lock.ID),
				logger.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("reserve inventory: %w", err)
	}

	s.logger.Info("lock acquired",
		logger.String("lock_id", lock.ID),
		logger.String("user_id", lock.UserID),
		logger.String("item_kind", string(lock.ItemKind)),
		logger.String("item_id", lock.ItemID),
		logger.Duration("ttl", s.settings.TTL),
	)

	go s.audit.LockAcquired(context.WithoutCancel(ctx), lockEvent(lock, "", now))

	return lock, nil
}

func (s *LockService) ExtendLock(ctx context.Context, lockID, userID string) (time.Time, error) {
	now := s.clock.Now().UTC()

	lock, err := s.store.GetLockByID(ctx, lockID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: get lock: %s", domain.ErrPersistenceFailure, err)
	}
	if lock == nil || lock.Expired(now) {
		return time.Time{}, domain.ErrLockNotFound
	}
	if lock.UserID != userID {
		return time.Time{}, domain.ErrUnauthorized
	}
	if lock.Extensions >= s.settings.MaxExtensions {
		return time.Time{}, domain.ErrMaxExtensionsReached
	}

	lock.ExpiresAt = lock.ExpiresAt.Add(s.settings.ExtensionTTL)
	lock.Extensions++

	ok, err := s.store.UpdateLock(ctx, lock, lock.ExpiresAt.Sub(now))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: update lock: %s", domain.ErrPersistenceFailure, err)
	}
	if !ok {
		return time.Time{}, domain.ErrLockNotFound
	}

	s.logger.Info("lock extended",
		logger.String("lock_id", lock.ID),
		logger.Int("extensions", lock.Extensions),
	)

	go s.audit.LockExtended(context.WithoutCancel(ctx), lockEvent(lock, "", now))

	return lock.ExpiresAt, nil
}

func (s *LockService) ReleaseLock(ctx context.Context, lockID, userID string) error {
	now := s.clock.Now().UTC()

	lock, err := s.store.GetLockByID(ctx, lockID)
	if err != nil {
		return fmt.Errorf("%w: get lock: %s", domain.ErrPersistenceFailure, err)
	}
	if lock == nil || lock.Expired(now) {
		return domain.ErrLockNotFound
	}
	if lock.UserID != userID {
		return domain.ErrUnauthorized
	}

	removed, err := s.store.DeleteLock(ctx, lock.ItemKind, lock.ItemID, lock.ID)
	if err != nil {
		return fmt.Errorf("%w: delete lock: %s", domain.ErrPersistenceFailure, err)
	}
	if !removed {
		// Lost the race against the sweep or a concurrent release;
		// whoever removed it restored the inventory.
		return domain.ErrLockNotFound
	}

	s.restoreInventory(ctx, lock)

	s.logger.Info("lock released",
		logger.String("lock_id", lock.ID),
		logger.String("user_id", lock.UserID),
	)

	s.emitRelease(ctx, lock, domain.ReleaseReasonUser, now)

	return nil
}

func (s *LockService) ConfirmBooking(ctx context.Context, lockID, userID string, payment domain.PaymentData) (*domain.Booking, error) {
	now := s.clock.Now().UTC()

	lock, err := s.store.GetLockByID(ctx, lockID)
	if err != nil {
		return nil, fmt.Errorf("%w: get lock: %s", domain.ErrPersistenceFailure, err)
	}
	if lock == nil {
		return nil, domain.ErrLockNotFound
	}
	if lock.Expired(now) {
		// Reclaim in place instead of waiting for the sweep.
		if s.reclaim(ctx, lock, now) {
			s.logger.Info("expired lock auto-released on confirm attempt",
				logger.String("lock_id", lock.ID),
			)
		}
		return nil, domain.ErrLockNotFound
	}
	if lock.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		Reference:     s.referenceCode(now),
		UserID:        lock.UserID,
		ItemKind:      lock.ItemKind,
		ItemID:        lock.ItemID,
		TravelDate:    dateOnly(lock.CreatedAt),
		Amount:        lock.Pricing.Total,
		Currency:      lock.Pricing.Currency,
		Status:        domain.BookingStatusConfirmed,
		PaymentStatus: payment.Status,
		Payment:       payment,
		Pricing:       lock.Pricing,
		LockID:        lock.ID,
		CreatedAt:     now,
	}

	// The lock stays intact if the insert fails so the caller can
	// retry confirmation; it must never end up consumed and
	// unconverted.
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: create booking: %s", domain.ErrPersistenceFailure, err)
	}

	// From here on the booking exists: later failures are logged, not
	// returned, so the caller never retries a successful confirmation.
	if err := s.inventory.UpdateInventory(ctx, lock.ItemKind, lock.ItemID, dateOnly(lock.CreatedAt), -1, true); err != nil {
		s.logger.Error("permanent inventory adjustment failed after confirmation",
			logger.String("booking_id", booking.ID),
			logger.String("item_id", lock.ItemID),
			logger.String("error", err.Error()),
		)
	}

	removed, err := s.store.DeleteLock(ctx, lock.ItemKind, lock.ItemID, lock.ID)
	if err != nil || !removed {
		s.logger.Warn("confirmed lock was already gone",
			logger.String("lock_id", lock.ID),
			logger.String("booking_id", booking.ID),
		)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("reference", booking.Reference),
		logger.String("lock_id", lock.ID),
		logger.String("user_id", lock.UserID),
	)

	go s.audit.BookingConfirmed(context.WithoutCancel(ctx), domain.BookingEvent{
		BookingID: booking.ID,
		Reference: booking.Reference,
		LockID:    lock.ID,
		UserID:    lock.UserID,
		ItemKind:  lock.ItemKind,
		ItemID:    lock.ItemID,
		Amount:    booking.Amount,
		Currency:  booking.Currency,
		At:        now,
	})

	return booking, nil
}

func (s *LockService) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *LockService) GetUserBookings(ctx context.Context, userID string) ([]*domain.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// GetActiveLock returns the live lock on an item, or nil when the
// item is free.
func (s *LockService) GetActiveLock(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.BookingLock, error) {
	lock, err := s.store.GetLock(ctx, kind, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: get lock: %s", domain.ErrPersistenceFailure, err)
	}
	if lock == nil || lock.Expired(s.clock.Now()) {
		return nil, nil
	}
	return lock, nil
}

func (s *LockService) GetLockByID(ctx context.Context, lockID string) (*domain.BookingLock, error) {
	lock, err := s.store.GetLockByID(ctx, lockID)
	if err != nil {
		return nil, fmt.Errorf("%w: get lock: %s", domain.ErrPersistenceFailure, err)
	}
	if lock == nil || lock.Expired(s.clock.Now()) {
		return nil, domain.ErrLockNotFound
	}
	return lock, nil
}

func (s *LockService) GetUserLocks(ctx context.Context, userID string) ([]*domain.BookingLock, error) {
	locks, err := s.store.ListUserLocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list user locks: %s", domain.ErrPersistenceFailure, err)
	}

	now := s.clock.Now()
	live := locks[:0]
	for _, l := range locks {
		if !l.Expired(now) {
			live = append(live, l)
		}
	}
	return live, nil
}

// CleanupExpiredLocks reclaims every lock whose expiry has passed and
// returns how many it removed. Safe to run concurrently with user
// operations: the owner-checked delete makes each lock reclaimable
// exactly once.
func (s *LockService) CleanupExpiredLocks(ctx context.Context) (int, error) {
	locks, err := s.store.ListLocks(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: list locks: %s", domain.ErrPersistenceFailure, err)
	}

	now := s.clock.Now().UTC()
	reclaimed := 0
	for _, lock := range locks {
		if !lock.Expired(now) {
			continue
		}
		if s.reclaim(ctx, lock, now) {
			reclaimed++
		}
	}

	return reclaimed, nil
}

// reclaim deletes an expired lock and restores its inventory. Returns
// false when another actor got to the lock first.
func (s *LockService) reclaim(ctx context.Context, lock *domain.BookingLock, now time.Time) bool {
	removed, err := s.store.DeleteLock(ctx, lock.ItemKind, lock.ItemID, lock.ID)
	if err != nil {
		s.logger.Error("failed to delete expired lock",
			logger.String("lock_id", lock.ID),
			logger.String("error", err.Error()),
		)
		return false
	}
	if !removed {
		return false
	}

	s.restoreInventory(ctx, lock)

	s.logger.Info("expired lock reclaimed",
		logger.String("lock_id", lock.ID),
		logger.String("user_id", lock.UserID),
		logger.String("item_id", lock.ItemID),
	)

	s.emitRelease(ctx, lock, domain.ReleaseReasonExpired, now)

	return true
}

// restoreInventory gives the lock's provisional unit back. The cached
// count is advisory, so a failure here degrades freshness rather than
// correctness and is only logged.
func (s *LockService) restoreInventory(ctx context.Context, lock *domain.BookingLock) {
	date := dateOnly(lock.CreatedAt)
	if err := s.inventory.UpdateInventory(ctx, lock.ItemKind, lock.ItemID, date, 1, false); err != nil {
		s.logger.Error("failed to restore inventory",
			logger.String("lock_id", lock.ID),
			logger.String("item_id", lock.ItemID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *LockService) emitRelease(ctx context.Context, lock *domain.BookingLock, reason string, now time.Time) {
	go s.audit.LockReleased(context.WithoutCancel(ctx), lockEvent(lock, reason, now))
}

func (s *LockService) referenceCode(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceAlphabet[s.rand.Intn(len(referenceAlphabet))]
	}
	ts := strings.ToUpper(strconv.FormatInt(now.Unix(), 36))
	return referencePrefix + "-" + ts + "-" + string(suffix)
}

func snapshot(quote *domain.DynamicPricing) domain.PricingSnapshot {
	taxes := math.Round(quote.FinalPrice*taxRate*100) / 100
	return domain.PricingSnapshot{
		BasePrice: quote.BasePrice,
		Taxes:     taxes,
		Fees:      serviceFee,
		Total:     quote.FinalPrice + taxes + serviceFee,
		Currency:  quote.Currency,
	}
}

func lockEvent(lock *domain.BookingLock, reason string, at time.Time) domain.LockEvent {
	return domain.LockEvent{
		LockID:    lock.ID,
		UserID:    lock.UserID,
		SessionID: lock.SessionID,
		ItemKind:  lock.ItemKind,
		ItemID:    lock.ItemID,
		Reason:    reason,
		Total:     lock.Pricing.Total,
		Currency:  lock.Pricing.Currency,
		ExpiresAt: lock.ExpiresAt,
		At:        at,
	}
}

func validKind(kind domain.ItemKind) bool {
	for _, k := range domain.ItemKinds {
		if k == kind {
			return true
		}
	}
	return false
}
