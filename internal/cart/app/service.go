package app

import (
	"context"
	"errors"
	"strings"

	"github.com/hipstershop/storefront/internal/cart/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// AddItem writes the item's row for (userID, productID). A repeated add for
// the same product replaces the stored quantity; quantities do not
// accumulate.
func (s *Service) AddItem(ctx context.Context, item domain.CartItem) error {
	if strings.TrimSpace(item.UserID) == "" || strings.TrimSpace(item.ProductID) == "" {
		return ErrInvalidInput
	}
	if item.Quantity < 1 {
		return ErrInvalidInput
	}
	return s.repo.Upsert(ctx, item)
}

// GetCart returns the user's items. A user with no rows gets an empty
// slice, not an error.
func (s *Service) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, userID)
}

// EmptyCart deletes every row for the user. It succeeds even when the cart
// was already empty.
func (s *Service) EmptyCart(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.repo.Clear(ctx, userID)
}
