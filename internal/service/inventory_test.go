package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anagha-safaar/booking-engine/internal/cache"
	"github.com/anagha-safaar/booking-engine/internal/domain"
	"github.com/anagha-safaar/booking-engine/internal/lockstore"
	"github.com/anagha-safaar/booking-engine/internal/service/ports/mocks"
)

type inventoryFixture struct {
	svc   *InventoryService
	store *lockstore.MemoryStore
	items *mocks.MockItemRepo
	clock *fakeClock
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()
	items := mocks.NewMockItemRepo(t)
	store := lockstore.NewMemoryStore()
	clock := &fakeClock{now: testNow}
	svc := NewInventoryService(items, store, cache.NewMemoryCache(), clock, 5*time.Minute, newTestLogger(t))
	return &inventoryFixture{svc: svc, store: store, items: items, clock: clock}
}

func TestInventoryService_GetInventory_LoadsAndCaches(t *testing.T) {
	f := newInventoryFixture(t)
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(5), nil).Once()

	first, err := f.svc.GetInventory(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 5, first)

	second, err := f.svc.GetInventory(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 5, second, "second read must not hit the repository")
}

func TestInventoryService_UpdateInventory_ProvisionalRoundTrip(t *testing.T) {
	f := newInventoryFixture(t)
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(5), nil).Once()

	require.NoError(t, f.svc.UpdateInventory(context.Background(), testKind, testItemID, testNow, -1, false))

	n, err := f.svc.GetInventory(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, f.svc.UpdateInventory(context.Background(), testKind, testItemID, testNow, 1, false))

	n, err = f.svc.GetInventory(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 5, n, "restore must bring the count back exactly")
}

func TestInventoryService_UpdateInventory_PermanentAdjustsCapacity(t *testing.T) {
	f := newInventoryFixture(t)
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(5), nil).Once()
	f.items.EXPECT().AdjustCapacity(mock.Anything, testKind, testItemID, -1).Return(nil).Once()
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(4), nil).Once()

	// Warm the cache, then make the durable adjustment.
	_, err := f.svc.GetInventory(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateInventory(context.Background(), testKind, testItemID, testNow, -1, true))

	// The cached count was invalidated, so this reload sees the new
	// capacity instead of a stale 5.
	n, err := f.svc.GetInventory(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestInventoryService_UpdateInventory_PermanentFailure(t *testing.T) {
	f := newInventoryFixture(t)
	f.items.EXPECT().AdjustCapacity(mock.Anything, testKind, testItemID, -1).Return(errors.New("db down"))

	err := f.svc.UpdateInventory(context.Background(), testKind, testItemID, testNow, -1, true)

	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
}

func TestInventoryService_GetLockedCount(t *testing.T) {
	f := newInventoryFixture(t)

	n, err := f.svc.GetLockedCount(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	lock := &domain.BookingLock{
		ID:        uuid.New().String(),
		UserID:    testUser,
		ItemKind:  testKind,
		ItemID:    testItemID,
		CreatedAt: testNow,
		ExpiresAt: testNow.Add(15 * time.Minute),
	}
	_, acquired, err := f.store.AcquireLock(context.Background(), lock, testNow, 15*time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	n, err = f.svc.GetLockedCount(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f.clock.Advance(16 * time.Minute)

	n, err = f.svc.GetLockedCount(context.Background(), testKind, testItemID, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "expired holds do not count")
}
