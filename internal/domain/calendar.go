package domain

import "time"

// CalendarDay is one date's availability in a queried range. Derived,
// never stored: inventory and locked counts are read at assembly time.
type CalendarDay struct {
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Inventory int       `json:"inventory"`
	Locked    int       `json:"locked"`
}
