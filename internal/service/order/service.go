// Package order is the order-placement collaborator behind checkout and
// the query side of the customer, restaurant, delivery and admin
// dashboards. Placed orders are the only cart-adjacent state that is
// persisted; carts themselves never touch the database.
package order

import (
	"context"
	"fmt"
	"time"

	"quickbite/internal/checkout"
	"quickbite/internal/domain"
	orderrepo "quickbite/internal/repository/order"
)

type repo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	ListByStatuses(ctx context.Context, statuses []string) ([]domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
	Stats(ctx context.Context) (*orderrepo.Stats, error)
}

type Service struct {
	repo repo
	now  func() time.Time
}

func New(r repo) *Service {
	return &Service{repo: r, now: time.Now}
}

// Place persists the submitted order and answers with its reference.
// Implements the checkout.OrderPlacer contract.
func (s *Service) Place(ctx context.Context, payload checkout.Payload) (*checkout.Placement, error) {
	items := make([]orderrepo.CreateOrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, orderrepo.CreateOrderItem{
			MenuItemID:      item.CatalogItemID,
			Name:            item.Name,
			UnitPriceCents:  item.UnitPriceCents,
			Quantity:        item.Quantity,
			SelectedOptions: item.SelectedOptions,
		})
	}

	var customerID *string
	if payload.Delivery.CustomerID != "" {
		id := payload.Delivery.CustomerID
		customerID = &id
	}

	ord, err := s.repo.Create(ctx, orderrepo.CreateOrderInput{
		Reference:         s.newReference(),
		RestaurantID:      payload.Restaurant.ID,
		RestaurantName:    payload.Restaurant.Name,
		RestaurantAddress: payload.Restaurant.Address,
		CustomerID:        customerID,
		DeliveryAddress:   payload.Delivery.Address,
		Phone:             payload.Delivery.Phone,
		TimeSlot:          payload.Delivery.TimeSlot,
		Instructions:      payload.Delivery.Instructions,
		PaymentMethod:     payload.PaymentMethod,
		SubtotalCents:     payload.Totals.SubtotalCents,
		DeliveryFeeCents:  payload.Totals.DeliveryFeeCents,
		TotalCents:        payload.Totals.TotalCents,
		Items:             items,
	})
	if err != nil {
		return nil, err
	}
	return &checkout.Placement{OrderID: ord.ID, Reference: ord.Reference}, nil
}

// newReference mints the human-facing order id shown on the
// confirmation page.
func (s *Service) newReference() string {
	return fmt.Sprintf("CMD-%d", s.now().UnixMilli())
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	return s.repo.GetByReference(ctx, reference)
}

func (s *Service) ListForCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) ListForRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// ListDeliverable returns the orders a rider can see: ready for pickup
// or already on the road.
func (s *Service) ListDeliverable(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListByStatuses(ctx, []string{domain.OrderStatusReady, domain.OrderStatusDelivering})
}

// UpdateStatus moves an order along its lifecycle, rejecting transitions
// the current status does not allow.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	ord, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range domain.NextStatuses(ord.Status) {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot move %s order to %s", domain.ErrConflict, ord.Status, status)
	}

	if err := s.repo.SetStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) Stats(ctx context.Context) (*orderrepo.Stats, error) {
	return s.repo.Stats(ctx)
}
