package domain

import "time"

// Multipliers are the factors a quote was built from, kept for
// auditability. AdvanceBooking is report-only: it is never folded
// into FinalPrice, callers apply it themselves where appropriate.
type Multipliers struct {
	Demand         float64 `json:"demand"`
	Seasonal       float64 `json:"seasonal"`
	TimeOfDay      float64 `json:"time_of_day"`
	AdvanceBooking float64 `json:"advance_booking"`
}

// DynamicPricing is an immutable quote for an item on a date.
type DynamicPricing struct {
	ItemKind    ItemKind    `json:"item_kind"`
	ItemID      string      `json:"item_id"`
	Date        time.Time   `json:"date"`
	BasePrice   float64     `json:"base_price"`
	Multipliers Multipliers `json:"multipliers"`
	FinalPrice  float64     `json:"final_price"`
	Currency    string      `json:"currency"`
	ComputedAt  time.Time   `json:"computed_at"`
}
