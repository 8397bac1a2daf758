package user

import (
	"context"

	"user-api/internal/models"
)

// Store defines the interface for user persistence.
type Store interface {
	Insert(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindPage(ctx context.Context, page, limit int, sort string) (*models.UserPage, error)
	Patch(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Replace(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Service forwards user operations to the store. It carries no logic of its
// own; the layer exists so handlers never depend on the store directly.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	return s.store.Insert(ctx, req)
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, limit int, sort string) (*models.UserPage, error) {
	return s.store.FindPage(ctx, page, limit, sort)
}

func (s *Service) Patch(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	return s.store.Patch(ctx, id, patch)
}

func (s *Service) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	return s.store.Replace(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
