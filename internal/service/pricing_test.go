package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anagha-safaar/booking-engine/internal/cache"
	"github.com/anagha-safaar/booking-engine/internal/domain"
	"github.com/anagha-safaar/booking-engine/internal/service/ports/mocks"
)

func newPricingService(t *testing.T, items *mocks.MockItemRepo, clock *fakeClock) *PricingService {
	t.Helper()
	return NewPricingService(items, cache.NewMemoryCache(), clock, fakeRand{}, time.Minute, newTestLogger(t))
}

func TestPricingService_GetDynamicPricing_Deterministic(t *testing.T) {
	items := mocks.NewMockItemRepo(t)
	items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(3), nil)

	svc := newPricingService(t, items, &fakeClock{now: testNow})

	quote, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, testNow)

	require.NoError(t, err)
	assert.Equal(t, 1000.0, quote.BasePrice)
	assert.Equal(t, 1.0, quote.Multipliers.Demand)
	assert.Equal(t, 1.10, quote.Multipliers.Seasonal)
	assert.Equal(t, 1.0, quote.Multipliers.TimeOfDay)
	assert.Equal(t, 1.0, quote.Multipliers.AdvanceBooking)
	assert.Equal(t, 1100.0, quote.FinalPrice)
	assert.Equal(t, "INR", quote.Currency)
}

func TestPricingService_GetDynamicPricing_WeekendDemand(t *testing.T) {
	items := mocks.NewMockItemRepo(t)
	items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(3), nil)

	svc := newPricingService(t, items, &fakeClock{now: testNow})

	// Saturday, four days out.
	saturday := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	quote, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, saturday)

	require.NoError(t, err)
	assert.Equal(t, 1.10, quote.Multipliers.Demand)
	assert.Equal(t, 1210.0, quote.FinalPrice)
	assert.InDelta(t, 0.96, quote.Multipliers.AdvanceBooking, 1e-9)
}

func TestPricingService_GetDynamicPricing_AdvanceDiscountFloor(t *testing.T) {
	items := mocks.NewMockItemRepo(t)
	items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(3), nil)

	svc := newPricingService(t, items, &fakeClock{now: testNow})

	// 37 days out would be a 37% discount; it clamps at the floor.
	farAhead := testNow.AddDate(0, 0, 37)
	quote, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, farAhead)

	require.NoError(t, err)
	assert.Equal(t, 0.8, quote.Multipliers.AdvanceBooking)

	// Reported only: the final price ignores the advance multiplier.
	assert.Equal(t, 1000.0, quote.FinalPrice, "April weekday at base demand")
}

func TestPricingService_GetDynamicPricing_TimeOfDay(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want float64
	}{
		{name: "evening surge", hour: 19, want: 1.10},
		{name: "night discount", hour: 3, want: 0.95},
		{name: "daytime neutral", hour: 12, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := mocks.NewMockItemRepo(t)
			items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(3), nil)

			clock := &fakeClock{now: time.Date(2026, time.March, 10, tt.hour, 0, 0, 0, time.UTC)}
			svc := newPricingService(t, items, clock)

			quote, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, clock.Now())

			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.Multipliers.TimeOfDay)
		})
	}
}

func TestPricingService_GetDynamicPricing_CacheHit(t *testing.T) {
	items := mocks.NewMockItemRepo(t)
	items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(testItem(3), nil).Once()

	svc := newPricingService(t, items, &fakeClock{now: testNow})

	first, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)

	second, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, testNow)
	require.NoError(t, err)

	assert.Equal(t, first.FinalPrice, second.FinalPrice)
	assert.Equal(t, first.ComputedAt, second.ComputedAt, "second quote must come from cache")
}

func TestPricingService_GetDynamicPricing_ItemMissing(t *testing.T) {
	items := mocks.NewMockItemRepo(t)
	items.EXPECT().GetByID(mock.Anything, testKind, "ghost").Return(nil, domain.ErrItemNotFound)

	svc := newPricingService(t, items, &fakeClock{now: testNow})

	_, err := svc.GetDynamicPricing(context.Background(), testKind, "ghost", testNow)

	assert.ErrorIs(t, err, domain.ErrPricingUnavailable)
}

func TestPricingService_GetDynamicPricing_RepoError(t *testing.T) {
	items := mocks.NewMockItemRepo(t)
	items.EXPECT().GetByID(mock.Anything, testKind, testItemID).Return(nil, errors.New("db down"))

	svc := newPricingService(t, items, &fakeClock{now: testNow})

	_, err := svc.GetDynamicPricing(context.Background(), testKind, testItemID, testNow)

	assert.ErrorIs(t, err, domain.ErrPricingUnavailable)
}
