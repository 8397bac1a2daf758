package comment

import (
	"context"

	"user-api/internal/models"
)

// Store defines the interface for comment persistence.
type Store interface {
	Insert(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error)
	FindByUser(ctx context.Context, userID string) ([]models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// Service forwards comment operations to the store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	return s.store.Insert(ctx, req)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	return s.store.FindByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
