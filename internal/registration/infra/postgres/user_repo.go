package postgres

import (
	"context"

	"github.com/hipstershop/storefront/internal/registration/domain"
	"github.com/hipstershop/storefront/pkg/postgres"
)

type UserRepo struct {
	store *postgres.Store
}

func NewUserRepo(store *postgres.Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Insert(ctx context.Context, user domain.User) error {
	_, err := r.store.ExecContext(ctx,
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3)`,
		user.Name, user.Email, user.Password,
	)
	return err
}
