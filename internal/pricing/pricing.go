// Package pricing holds the presentation-side money constants: the
// display conversion rate and the flat delivery fee. None of this ever
// feeds back into the cart engine's total, which stays a plain sum of
// unit price times quantity.
package pricing

// DisplayRate converts engine amounts to display currency (XOF). The
// storefront treats the two as 1:1.
const DisplayRate = 1

// DeliveryFeeCents is the flat delivery fee added at checkout, in
// minor currency units.
const DeliveryFeeCents int64 = 500

// Quote is the totals block shown at checkout and sent with the order.
type Quote struct {
	SubtotalCents    int64 `json:"subtotalCents"`
	DeliveryFeeCents int64 `json:"deliveryFeeCents"`
	TotalCents       int64 `json:"totalCents"`
}

// QuoteFor derives the checkout totals from a cart subtotal.
func QuoteFor(subtotalCents int64) Quote {
	sub := ToDisplay(subtotalCents)
	return Quote{
		SubtotalCents:    sub,
		DeliveryFeeCents: DeliveryFeeCents,
		TotalCents:       sub + DeliveryFeeCents,
	}
}

// ToDisplay applies the display conversion rate.
func ToDisplay(cents int64) int64 {
	return cents * DisplayRate
}
