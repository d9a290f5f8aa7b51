package ports

import "time"

// Clock and Rand isolate time and randomness so pricing and lock
// expiry are deterministic under test.
type Clock interface {
	Now() time.Time
}

type Rand interface {
	Float64() float64
	Intn(n int) int
}
