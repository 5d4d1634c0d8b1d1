package app

import (
	"context"

	"github.com/hipstershop/storefront/internal/cart/domain"
)

type CartRepo interface {
	Upsert(ctx context.Context, item domain.CartItem) error
	List(ctx context.Context, userID string) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID string) error
}
