package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quickbite/internal/checkout"
	"quickbite/internal/domain"
	"quickbite/internal/pricing"
	orderrepo "quickbite/internal/repository/order"
)

type stubRepo struct {
	created       *domain.Order
	createErr     error
	lastCreate    orderrepo.CreateOrderInput
	byID          []*domain.Order
	byIDErr       error
	byIDCalls     int
	setStatusErr  error
	lastSetID     string
	lastSetStatus string
	statuses      []string
}

func (s *stubRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) GetByReference(_ context.Context, _ string) (*domain.Order, error) {
	return s.created, s.createErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	var res *domain.Order
	if len(s.byID) > 0 {
		idx := s.byIDCalls
		if idx >= len(s.byID) {
			idx = len(s.byID) - 1
		}
		res = s.byID[idx]
	}
	s.byIDCalls++
	return res, nil
}

func (s *stubRepo) ListByCustomer(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubRepo) ListByRestaurant(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubRepo) ListByStatuses(_ context.Context, statuses []string) ([]domain.Order, error) {
	s.statuses = statuses
	return nil, nil
}

func (s *stubRepo) SetStatus(_ context.Context, id, status string) error {
	s.lastSetID = id
	s.lastSetStatus = status
	return s.setStatusErr
}

func (s *stubRepo) Stats(_ context.Context) (*orderrepo.Stats, error) {
	return &orderrepo.Stats{TotalOrders: 3}, nil
}

func payload() checkout.Payload {
	return checkout.Payload{
		Items: []checkout.PayloadItem{
			{CatalogItemID: "m1", Name: "Margherita", UnitPriceCents: 1000, Quantity: 2, SelectedOptions: map[string]string{"size": "M"}},
		},
		Restaurant:    checkout.PayloadRestaurant{ID: "r1", Name: "Pizza Italia", Address: "Cotonou"},
		Delivery:      checkout.PayloadDelivery{Address: "Rue 123", Phone: "+229 90 00 00 00", TimeSlot: "asap"},
		PaymentMethod: domain.PaymentCash,
		Totals:        pricing.QuoteFor(2000),
	}
}

func TestPlaceBuildsCreateInput(t *testing.T) {
	repo := &stubRepo{created: &domain.Order{ID: "o1", Reference: "CMD-42"}}
	svc := New(repo)
	svc.now = func() time.Time { return time.UnixMilli(42) }

	got, err := svc.Place(context.Background(), payload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OrderID != "o1" || got.Reference != "CMD-42" {
		t.Fatalf("unexpected placement: %+v", got)
	}
	in := repo.lastCreate
	if in.Reference != "CMD-42" {
		t.Fatalf("expected reference CMD-42, got %s", in.Reference)
	}
	if !strings.HasPrefix(in.Reference, "CMD-") {
		t.Fatalf("reference must carry the CMD prefix: %s", in.Reference)
	}
	if in.RestaurantID != "r1" || in.RestaurantName != "Pizza Italia" {
		t.Fatalf("unexpected restaurant fields: %+v", in)
	}
	if len(in.Items) != 1 || in.Items[0].Quantity != 2 || in.Items[0].SelectedOptions["size"] != "M" {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if in.TotalCents != 2000+pricing.DeliveryFeeCents {
		t.Fatalf("unexpected total: %d", in.TotalCents)
	}
	if in.CustomerID != nil {
		t.Fatalf("expected anonymous order, got customer %v", *in.CustomerID)
	}
}

func TestPlacePropagatesRepoError(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("insert failed")}
	svc := New(repo)
	if _, err := svc.Place(context.Background(), payload()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	pendingOrd := &domain.Order{ID: "o1", Status: domain.OrderStatusPending}
	confirmed := &domain.Order{ID: "o1", Status: domain.OrderStatusConfirmed}
	repo := &stubRepo{byID: []*domain.Order{pendingOrd, confirmed}}
	svc := New(repo)

	got, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.OrderStatusConfirmed {
		t.Fatalf("unexpected order: %+v", got)
	}
	if repo.lastSetID != "o1" || repo.lastSetStatus != domain.OrderStatusConfirmed {
		t.Fatalf("SetStatus not called as expected")
	}
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	repo := &stubRepo{byID: []*domain.Order{{ID: "o1", Status: domain.OrderStatusDelivered}}}
	svc := New(repo)

	_, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderStatusPending)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if repo.lastSetStatus != "" {
		t.Fatalf("SetStatus must not run on an illegal transition")
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	repo := &stubRepo{byIDErr: domain.ErrNotFound}
	svc := New(repo)
	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.OrderStatusConfirmed); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListDeliverableQueriesRiderStatuses(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	if _, err := svc.ListDeliverable(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{domain.OrderStatusReady, domain.OrderStatusDelivering}
	if len(repo.statuses) != 2 || repo.statuses[0] != want[0] || repo.statuses[1] != want[1] {
		t.Fatalf("unexpected statuses: %v", repo.statuses)
	}
}
