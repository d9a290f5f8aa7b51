package service

import (
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/service/ports"
)

// EngineDeps are the engine's external collaborators. Clock and Rand
// default to the system implementations when nil.
type EngineDeps struct {
	Store    ports.LockStore
	Cache    ports.Cache
	Items    ports.ItemRepo
	Bookings ports.BookingRepo
	Audit    ports.AuditSink
	Clock    ports.Clock
	Rand     ports.Rand
}

type EngineSettings struct {
	Locks        LockSettings
	PricingTTL   time.Duration
	InventoryTTL time.Duration
	CalendarTTL  time.Duration
}

// Engine composes the four reservation concerns over one shared store
// and cache. Callers use the service fields directly.
type Engine struct {
	Locks     *LockService
	Pricing   *PricingService
	Inventory *InventoryService
	Calendar  *CalendarService
}

func NewEngine(deps EngineDeps, settings EngineSettings, log logger.Logger) *Engine {
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock()
	}
	rnd := deps.Rand
	if rnd == nil {
		rnd = SystemRand()
	}

	pricing := NewPricingService(deps.Items, deps.Cache, clock, rnd, settings.PricingTTL, log)
	inventory := NewInventoryService(deps.Items, deps.Store, deps.Cache, clock, settings.InventoryTTL, log)
	locks := NewLockService(deps.Store, deps.Items, deps.Bookings, pricing, inventory, deps.Audit, clock, rnd, settings.Locks, log)
	calendar := NewCalendarService(inventory, pricing, deps.Cache, settings.CalendarTTL, log)

	return &Engine{
		Locks:     locks,
		Pricing:   pricing,
		Inventory: inventory,
		Calendar:  calendar,
	}
}
