package greeting

import (
	"context"
	"errors"

	"user-api/internal/store"
)

// DefaultMessage is written on the first read of a fresh store.
const DefaultMessage = "Hello from MongoDB!"

// Store defines the interface for greeting persistence.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, text string) (string, error)
}

// Service reads and writes the single greeting value.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the stored greeting. On first access it persists and returns
// the default, so a second read sees the same value without re-defaulting.
func (s *Service) Get(ctx context.Context) (string, error) {
	text, err := s.store.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return s.store.Set(ctx, DefaultMessage)
	}
	return text, err
}

// Set overwrites the greeting, creating it if absent.
func (s *Service) Set(ctx context.Context, text string) (string, error) {
	return s.store.Set(ctx, text)
}
