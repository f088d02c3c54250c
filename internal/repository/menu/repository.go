package menu

import (
	"context"

	"quickbite/internal/domain"
)

type Repository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
	UpsertItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}
