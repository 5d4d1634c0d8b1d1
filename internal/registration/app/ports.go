package app

import (
	"context"

	"github.com/hipstershop/storefront/internal/registration/domain"
)

type UserRepo interface {
	Insert(ctx context.Context, user domain.User) error
}
