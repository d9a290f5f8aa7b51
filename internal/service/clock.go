package service

import (
	"math/rand"
	"time"

	"github.com/anagha-safaar/booking-engine/internal/service/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the production Clock.
func SystemClock() ports.Clock { return systemClock{} }

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) Intn(n int) int   { return rand.Intn(n) }

// SystemRand draws from math/rand's shared source, which is safe for
// concurrent use.
func SystemRand() ports.Rand { return systemRand{} }

// dateOnly truncates t to its UTC calendar day. Cache keys and
// inventory dates are always day-granular.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
