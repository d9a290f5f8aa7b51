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

type calendarFixture struct {
	svc   *CalendarService
	store *lockstore.MemoryStore
	items *mocks.MockItemRepo
	clock *fakeClock
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()
	items := mocks.NewMockItemRepo(t)
	store := lockstore.NewMemoryStore()
	mem := cache.NewMemoryCache()
	clock := &fakeClock{now: testNow}
	log := newTestLogger(t)

	pricing := NewPricingService(items, mem, clock, fakeRand{}, time.Minute, log)
	ledger := NewInventoryService(items, store, mem, clock, 5*time.Minute, log)
	svc := NewCalendarService(ledger, pricing, mem, 10*time.Minute, log)

	return &calendarFixture{svc: svc, store: store, items: items, clock: clock}
}

func TestCalendarService_GetCalendarAvailability_Range(t *testing.T) {
	f := newCalendarFixture(t)
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(2), nil)

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

	start := dateOnly(testNow)
	end := start.AddDate(0, 0, 4)
	days, err := f.svc.GetCalendarAvailability(context.Background(), testKind, testItemID, start, end)

	require.NoError(t, err)
	require.Len(t, days, 5)

	for i, day := range days {
		assert.Equal(t, start.AddDate(0, 0, i), day.Date)
		assert.Equal(t, 2, day.Inventory)
		assert.Equal(t, 1, day.Locked)
		assert.True(t, day.Available, "capacity exceeds held units on %s", dateKey(day.Date))
		assert.Greater(t, day.Price, 0.0)
		assert.Equal(t, "INR", day.Currency)
	}
}

func TestCalendarService_GetCalendarAvailability_FullyHeldDay(t *testing.T) {
	f := newCalendarFixture(t)
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(1), nil)

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

	days, err := f.svc.GetCalendarAvailability(context.Background(), testKind, testItemID, testNow, testNow)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.False(t, days[0].Available, "a single-unit item with a live hold is unavailable")
	assert.Equal(t, 1, days[0].Inventory)
	assert.Equal(t, 1, days[0].Locked)
}

func TestCalendarService_GetCalendarAvailability_EndBeforeStart(t *testing.T) {
	f := newCalendarFixture(t)

	_, err := f.svc.GetCalendarAvailability(context.Background(), testKind, testItemID, testNow, testNow.AddDate(0, 0, -1))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_GetCalendarAvailability_DegradesPerDay(t *testing.T) {
	f := newCalendarFixture(t)
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(nil, errors.New("db down"))

	days, err := f.svc.GetCalendarAvailability(context.Background(), testKind, testItemID, testNow, testNow.AddDate(0, 0, 2))

	require.NoError(t, err, "lookup failures degrade entries, not the range")
	require.Len(t, days, 3)
	for _, day := range days {
		assert.False(t, day.Available)
		assert.Equal(t, 0, day.Inventory)
		assert.Equal(t, 0.0, day.Price)
	}
}

func TestCalendarService_GetCalendarAvailability_CachedRange(t *testing.T) {
	f := newCalendarFixture(t)
	// Three days: one inventory load plus one pricing compute per day.
	f.items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(2), nil).Times(6)

	start := dateOnly(testNow)
	end := start.AddDate(0, 0, 2)

	first, err := f.svc.GetCalendarAvailability(context.Background(), testKind, testItemID, start, end)
	require.NoError(t, err)

	second, err := f.svc.GetCalendarAvailability(context.Background(), testKind, testItemID, start, end)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Price, second[i].Price)
		assert.Equal(t, first[i].Available, second[i].Available)
	}
}
