package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	pricing, err := json.Marshal(b.Pricing)
	if err != nil {
		return fmt.Errorf("marshal pricing snapshot: %w", err)
	}

	query := `INSERT INTO bookings (id, reference, user_id, item_kind, item_id, travel_date,
				amount, currency, status, payment_status, payment_method, transaction_id,
				guest_name, guest_email, pricing, lock_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Reference, b.UserID, b.ItemKind, b.ItemID, b.TravelDate,
		b.Amount, b.Currency, b.Status, b.PaymentStatus, b.Payment.Method,
		b.Payment.TransactionID, b.Payment.GuestName, b.Payment.GuestEmail,
		pricing, b.LockID, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("duplicate booking reference %s: %w", b.Reference, err)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := selectBookings + ` WHERE reference = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := selectBookings + ` WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

const selectBookings = `SELECT id, reference, user_id, item_kind, item_id, travel_date,
		amount, currency, status, payment_status, payment_method, transaction_id,
		guest_name, guest_email, pricing, lock_id, created_at
	FROM bookings`

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		b       domain.Booking
		pricing []byte
	)
	if err := scan(
		&b.ID, &b.Reference, &b.UserID, &b.ItemKind, &b.ItemID, &b.TravelDate,
		&b.Amount, &b.Currency, &b.Status, &b.PaymentStatus, &b.Payment.Method,
		&b.Payment.TransactionID, &b.Payment.GuestName, &b.Payment.GuestEmail,
		&pricing, &b.LockID, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.Payment.Status = b.PaymentStatus

	if len(pricing) > 0 {
		if err := json.Unmarshal(pricing, &b.Pricing); err != nil {
			return nil, fmt.Errorf("unmarshal pricing snapshot: %w", err)
		}
	}

	return &b, nil
}
