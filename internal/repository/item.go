package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ItemRepository) GetByID(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error) {
	query := `SELECT id, kind, name, capacity, base_price, currency, details, created_at, updated_at
			  FROM items
			  WHERE id = $1 AND kind = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, itemID, kind)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	var (
		item    domain.Item
		details []byte
	)
	if err = row.Scan(
		&item.ID, &item.Kind, &item.Name, &item.Capacity,
		&item.BasePrice, &item.Currency, &details,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	if len(details) > 0 {
		if err = json.Unmarshal(details, &item.Details); err != nil {
			return nil, fmt.Errorf("unmarshal item details: %w", err)
		}
	}

	return &item, nil
}

func (r *ItemRepository) AdjustCapacity(ctx context.Context, kind domain.ItemKind, itemID string, delta int) error {
	query := `UPDATE items
			  SET capacity = capacity + $3, updated_at = now()
			  WHERE id = $1 AND kind = $2 AND capacity + $3 >= 0`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, itemID, kind, delta)
	if err != nil {
		return fmt.Errorf("adjust capacity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust capacity rows affected: %w", err)
	}
	if rows == 0 {
		// Missing item or the delta would drive capacity negative.
		if _, err := r.GetByID(ctx, kind, itemID); err != nil {
			return err
		}
		return fmt.Errorf("adjust capacity: delta %d exceeds remaining capacity of %s %s", delta, kind, itemID)
	}

	return nil
}
