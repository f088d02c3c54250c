// Package checkout turns a cart plus delivery details into the
// normalized order payload and walks it through submission. The cart is
// only ever cleared after the order placer confirms success; any failure
// leaves it untouched so the user can retry as-is.
package checkout

import (
	"context"
	"strings"

	"quickbite/internal/cart"
	"quickbite/internal/domain"
	"quickbite/internal/pricing"
)

// DeliveryDetails is what the checkout form collects. Unauthenticated
// checkout is allowed, so address and phone always arrive inline.
type DeliveryDetails struct {
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	TimeSlot      string `json:"timeSlot"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"paymentMethod"`
	// CustomerID is set server-side from the session token when the
	// caller is authenticated; anonymous checkout leaves it empty.
	CustomerID string `json:"-"`
}

// Payload is the order-submission contract.
type Payload struct {
	Items         []PayloadItem     `json:"items"`
	Restaurant    PayloadRestaurant `json:"restaurant"`
	Delivery      PayloadDelivery   `json:"delivery"`
	PaymentMethod string            `json:"paymentMethod"`
	Totals        pricing.Quote     `json:"totals"`
}

type PayloadItem struct {
	CatalogItemID   string            `json:"catalogItemId"`
	Name            string            `json:"name"`
	UnitPriceCents  int64             `json:"unitPrice"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions"`
}

type PayloadRestaurant struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type PayloadDelivery struct {
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	TimeSlot     string `json:"timeSlot,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	CustomerID   string `json:"-"`
}

// Placement is the placer's success response.
type Placement struct {
	OrderID   string
	Reference string
}

// OrderPlacer is the external order-placement collaborator.
type OrderPlacer interface {
	Place(ctx context.Context, payload Payload) (*Placement, error)
}

type Service struct {
	placer OrderPlacer
}

func New(placer OrderPlacer) *Service {
	return &Service{placer: placer}
}

// Submit validates, assembles the payload, and delegates to the placer.
// On success the cart is cleared and the placement returned. Validation
// failures never reach the placer.
func (s *Service) Submit(ctx context.Context, c *cart.Cart, details DeliveryDetails) (*Placement, error) {
	if err := validate(c, details); err != nil {
		return nil, err
	}

	payload := Assemble(c, details)
	placement, err := s.placer.Place(ctx, payload)
	if err != nil {
		return nil, categorize(err)
	}

	c.Clear()
	return placement, nil
}

// Assemble builds the normalized payload from current cart state.
func Assemble(c *cart.Cart, details DeliveryDetails) Payload {
	items := make([]PayloadItem, 0, len(c.Items))
	for _, line := range c.Items {
		opts := line.SelectedOptions
		if opts == nil {
			opts = map[string]string{}
		}
		items = append(items, PayloadItem{
			CatalogItemID:   line.CatalogItemID,
			Name:            line.Name,
			UnitPriceCents:  line.UnitPriceCents,
			Quantity:        line.Quantity,
			SelectedOptions: opts,
		})
	}

	var restaurant PayloadRestaurant
	if c.Restaurant != nil {
		restaurant = PayloadRestaurant{
			ID:      c.Restaurant.ID,
			Name:    c.Restaurant.Name,
			Address: c.Restaurant.Address,
		}
	}

	method := details.PaymentMethod
	if method == "" {
		method = domain.PaymentCash
	}

	return Payload{
		Items:      items,
		Restaurant: restaurant,
		Delivery: PayloadDelivery{
			Address:      strings.TrimSpace(details.Address),
			Phone:        strings.TrimSpace(details.Phone),
			TimeSlot:     details.TimeSlot,
			Instructions: details.Instructions,
			CustomerID:   details.CustomerID,
		},
		PaymentMethod: method,
		Totals:        pricing.QuoteFor(c.TotalCents),
	}
}

func validate(c *cart.Cart, details DeliveryDetails) error {
	if len(c.Items) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(details.Address) == "" {
		return ErrMissingAddress
	}
	if strings.TrimSpace(details.Phone) == "" {
		return ErrMissingPhone
	}
	if details.PaymentMethod != "" && !domain.ValidPaymentMethod(details.PaymentMethod) {
		return ErrBadPayment
	}
	return nil
}

// categorize maps placer failures into the checkout taxonomy. Placers
// may return a *Error directly; anything else counts as a server fault.
func categorize(err error) error {
	if cerr, ok := err.(*Error); ok {
		return cerr
	}
	return &Error{Category: CategoryServer, Message: err.Error()}
}
