package ports

import (
	"context"
	"time"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

// LockStore is the shared key-value store holding the lock set. One
// record per (ItemKind, ItemID). The store keeps records raw: reads
// return logically expired locks too, expiry filtering is the lock
// manager's job. The sweep depends on expired records staying visible
// for a grace window after their logical expiry.
type LockStore interface {
	// AcquireLock writes the lock iff no live lock exists for its
	// item, as a single atomic conditional write. When it replaces a
	// logically expired record, that record is returned as prev so
	// the caller can reclaim its inventory exactly once.
	AcquireLock(ctx context.Context, lock *domain.BookingLock, now time.Time, ttl time.Duration) (prev *domain.BookingLock, acquired bool, err error)

	// UpdateLock replaces the stored record iff the current one still
	// carries lock.ID. Used by extension; ttl is the new remaining
	// lifetime.
	UpdateLock(ctx context.Context, lock *domain.BookingLock, ttl time.Duration) (bool, error)

	// DeleteLock removes the record iff it still carries lockID.
	// Returns false when the record is already gone or was replaced,
	// which is what makes release and sweep idempotent.
	DeleteLock(ctx context.Context, kind domain.ItemKind, itemID, lockID string) (bool, error)

	// GetLock and GetLockByID return (nil, nil) when nothing is stored.
	GetLock(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.BookingLock, error)
	GetLockByID(ctx context.Context, lockID string) (*domain.BookingLock, error)

	ListLocks(ctx context.Context) ([]*domain.BookingLock, error)
	ListUserLocks(ctx context.Context, userID string) ([]*domain.BookingLock, error)
}

// Cache is a read-through byte cache with per-key TTL. Get returns
// (nil, nil) on miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
