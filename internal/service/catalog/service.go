// Package catalog serves the browsing side of the storefront:
// restaurant listings with search and category filters, and per-restaurant
// menus with their option groups.
package catalog

import (
	"context"

	"quickbite/internal/domain"
	restaurantrepo "quickbite/internal/repository/restaurant"
)

type restaurantRepo interface {
	List(ctx context.Context, filter restaurantrepo.ListFilter) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

type menuRepo interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type Service struct {
	restaurants restaurantRepo
	menus       menuRepo
}

func New(restaurants restaurantRepo, menus menuRepo) *Service {
	return &Service{restaurants: restaurants, menus: menus}
}

func (s *Service) ListRestaurants(ctx context.Context, search, category string) ([]domain.Restaurant, error) {
	return s.restaurants.List(ctx, restaurantrepo.ListFilter{Search: search, Category: category})
}

func (s *Service) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

func (s *Service) GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.menus.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menus.GetItem(ctx, id)
}
