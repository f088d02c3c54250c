package order

import (
	"context"

	"quickbite/internal/domain"
)

type CreateOrderInput struct {
	Reference         string
	RestaurantID      string
	RestaurantName    string
	RestaurantAddress string
	CustomerID        *string
	DeliveryAddress   string
	Phone             string
	TimeSlot          string
	Instructions      string
	PaymentMethod     string
	SubtotalCents     int64
	DeliveryFeeCents  int64
	TotalCents        int64
	Items             []CreateOrderItem
}

type CreateOrderItem struct {
	MenuItemID      string
	Name            string
	UnitPriceCents  int64
	Quantity        int
	SelectedOptions map[string]string
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalOrders       int   `json:"totalOrders"`
	TotalRevenueCents int64 `json:"totalRevenueCents"`
	ActiveRestaurants int   `json:"activeRestaurants"`
	ActiveDrivers     int   `json:"activeDrivers"`
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	ListByStatuses(ctx context.Context, statuses []string) ([]domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
	Stats(ctx context.Context) (*Stats, error)
}
