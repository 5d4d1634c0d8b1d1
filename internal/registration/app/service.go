package app

import (
	"context"

	"github.com/hipstershop/storefront/internal/registration/domain"
)

type Service struct {
	repo UserRepo
}

func NewService(repo UserRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Register inserts the user row. Email uniqueness is left to the datastore
// schema; absent fields are stored as their zero values.
func (s *Service) Register(ctx context.Context, user domain.User) error {
	return s.repo.Insert(ctx, user)
}
