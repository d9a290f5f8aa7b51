package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// PaymentData is what the caller hands over at confirmation time.
type PaymentData struct {
	Method        string        `json:"method"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	GuestName     string        `json:"guest_name"`
	GuestEmail    string        `json:"guest_email"`
}

// Booking is the durable record created when a lock is confirmed.
// The engine creates it; refunds and cancellations live elsewhere.
type Booking struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	UserID        string          `json:"user_id"`
	ItemKind      ItemKind        `json:"item_kind"`
	ItemID        string          `json:"item_id"`
	TravelDate    time.Time       `json:"travel_date"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Status        BookingStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Payment       PaymentData     `json:"payment"`
	Pricing       PricingSnapshot `json:"pricing"`
	LockID        string          `json:"lock_id"`
	CreatedAt     time.Time       `json:"created_at"`
}
