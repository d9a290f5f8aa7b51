package domain

import "time"

// Reasons attached to lock-released audit events.
const (
	ReleaseReasonUser    = "user_release"
	ReleaseReasonExpired = "expired"
)

// LockEvent is the audit payload for lock-acquired, lock-extended and
// lock-released events.
type LockEvent struct {
	LockID    string    `json:"lock_id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	ItemKind  ItemKind  `json:"item_kind"`
	ItemID    string    `json:"item_id"`
	Reason    string    `json:"reason,omitempty"`
	Total     float64   `json:"total"`
	Currency  string    `json:"currency"`
	ExpiresAt time.Time `json:"expires_at"`
	At        time.Time `json:"at"`
}

// BookingEvent is the audit payload for booking-confirmed events.
type BookingEvent struct {
	BookingID string    `json:"booking_id"`
	Reference string    `json:"reference"`
	LockID    string    `json:"lock_id"`
	UserID    string    `json:"user_id"`
	ItemKind  ItemKind  `json:"item_kind"`
	ItemID    string    `json:"item_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	At        time.Time `json:"at"`
}
