package domain

import "time"

// Order statuses, in the order a happy-path order moves through them.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusReady      = "ready"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment method placeholders. No processing happens behind any of them.
const (
	PaymentCash         = "cash"
	PaymentMobileMoneyA = "mobile_money_a"
	PaymentMobileMoneyB = "mobile_money_b"
	PaymentCard         = "card"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentMobileMoneyA, PaymentMobileMoneyB, PaymentCard:
		return true
	}
	return false
}

type Order struct {
	ID                string      `json:"id"`
	Reference         string      `json:"reference"`
	RestaurantID      string      `json:"restaurantId"`
	RestaurantName    string      `json:"restaurantName"`
	RestaurantAddress string      `json:"restaurantAddress,omitempty"`
	CustomerID        *string     `json:"customerId,omitempty"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	Phone             string      `json:"phone"`
	TimeSlot          string      `json:"timeSlot,omitempty"`
	Instructions      string      `json:"instructions,omitempty"`
	PaymentMethod     string      `json:"paymentMethod"`
	SubtotalCents     int64       `json:"subtotalCents"`
	DeliveryFeeCents  int64       `json:"deliveryFeeCents"`
	TotalCents        int64       `json:"totalCents"`
	Status            string      `json:"status"`
	Items             []OrderItem `json:"items,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID              string            `json:"id"`
	OrderID         string            `json:"orderId"`
	MenuItemID      string            `json:"menuItemId"`
	Name            string            `json:"name"`
	UnitPriceCents  int64             `json:"unitPriceCents"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

// NextStatuses returns the statuses an order may legally move to.
// Delivery riders only advance ready→delivering→delivered; restaurants
// own the earlier transitions and may cancel before handoff.
func NextStatuses(current string) []string {
	switch current {
	case OrderStatusPending:
		return []string{OrderStatusConfirmed, OrderStatusCancelled}
	case OrderStatusConfirmed:
		return []string{OrderStatusPreparing, OrderStatusCancelled}
	case OrderStatusPreparing:
		return []string{OrderStatusReady, OrderStatusCancelled}
	case OrderStatusReady:
		return []string{OrderStatusDelivering}
	case OrderStatusDelivering:
		return []string{OrderStatusDelivered}
	}
	return nil
}
