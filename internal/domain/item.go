package domain

import "time"

// Item is the collaborator-owned inventory record the engine reads
// capacity and base price from. Capacity means available rooms, seats
// or tour group size depending on Kind.
type Item struct {
	ID        string         `json:"id"`
	Kind      ItemKind       `json:"kind"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	BasePrice float64        `json:"base_price"`
	Currency  string         `json:"currency"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
