package restaurant

import (
	"context"

	"quickbite/internal/domain"
)

type ListFilter struct {
	Search   string
	Category string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Upsert(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error)
}
