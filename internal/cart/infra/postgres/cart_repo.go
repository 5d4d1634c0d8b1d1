package postgres

import (
	"context"

	"github.com/hipstershop/storefront/internal/cart/domain"
	"github.com/hipstershop/storefront/pkg/postgres"
)

type CartRepo struct {
	store *postgres.Store
}

func NewCartRepo(store *postgres.Store) *CartRepo {
	return &CartRepo{store: store}
}

func (r *CartRepo) Upsert(ctx context.Context, item domain.CartItem) error {
	_, err := r.store.ExecContext(ctx,
		`INSERT INTO cart (user_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = EXCLUDED.quantity`,
		item.UserID, item.ProductID, item.Quantity,
	)
	return err
}

func (r *CartRepo) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := r.store.QueryContext(ctx,
		`SELECT product_id, quantity FROM cart WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{UserID: userID}
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.store.ExecContext(ctx,
		`DELETE FROM cart WHERE user_id = $1`,
		userID,
	)
	return err
}
