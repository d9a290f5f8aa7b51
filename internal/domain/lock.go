package domain

import "time"

type ItemKind string

const (
	ItemKindRoom     ItemKind = "room"
	ItemKindSeat     ItemKind = "seat"
	ItemKindTourSlot ItemKind = "tour_slot"
)

var ItemKinds = []ItemKind{ItemKindRoom, ItemKindSeat, ItemKindTourSlot}

// RelockPolicy controls what LockItem does when the requesting user
// already holds the active lock on the item.
type RelockPolicy string

const (
	// RelockReject treats the holder like any other contender.
	RelockReject RelockPolicy = "reject"
	// RelockReturnExisting hands back the live lock unchanged.
	RelockReturnExisting RelockPolicy = "return_existing"
)

// LockMetadata is request context captured at lock time.
type LockMetadata struct {
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Channel   string `json:"channel,omitempty"`
}

// PricingSnapshot freezes the quote a lock was taken at.
type PricingSnapshot struct {
	BasePrice float64 `json:"base_price"`
	Taxes     float64 `json:"taxes"`
	Fees      float64 `json:"fees"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
}

// BookingLock is a time-boxed exclusive hold on one inventory unit.
// At most one non-expired lock exists per (ItemKind, ItemID).
type BookingLock struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	SessionID   string          `json:"session_id"`
	ItemKind    ItemKind        `json:"item_kind"`
	ItemID      string          `json:"item_id"`
	ItemName    string          `json:"item_name"`
	ItemDetails map[string]any  `json:"item_details,omitempty"`
	Pricing     PricingSnapshot `json:"pricing"`
	Metadata    LockMetadata    `json:"metadata"`
	Extensions  int             `json:"extensions"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

func (l *BookingLock) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
