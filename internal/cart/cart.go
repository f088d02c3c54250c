package cart

import (
	"sort"

	"github.com/google/uuid"

	"quickbite/internal/domain"
)

// RestaurantRef is the weak back-reference a cart keeps to the restaurant
// whose items it holds. It carries only what checkout needs to echo.
type RestaurantRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// LineItem is one row in the cart. ID is minted per add, not taken from the
// catalog, so two adds of the same menu item stay distinguishable unless
// the merge rule collapses them.
type LineItem struct {
	ID              string            `json:"id"`
	CatalogItemID   string            `json:"menuItemId"`
	Name            string            `json:"name"`
	UnitPriceCents  int64             `json:"unitPriceCents"`
	ImageRef        string            `json:"image,omitempty"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions"`
}

// Cart is the session-scoped aggregate. Items keep insertion order.
// Total is derived and recomputed after every mutation; it is never
// assigned from outside the recompute step.
type Cart struct {
	Items      []LineItem     `json:"items"`
	Restaurant *RestaurantRef `json:"restaurant,omitempty"`
	TotalCents int64          `json:"totalCents"`
}

func New() *Cart {
	return &Cart{Items: []LineItem{}}
}

// AddItem applies the restaurant scope guard, then either merges the
// incoming (menu item, options) pair into an existing line or appends a
// fresh one. The price, name and image are snapshotted at add time.
// Quantities below 1 are clamped to 1, matching UpdateQuantity.
func (c *Cart) AddItem(item domain.MenuItem, selectedOptions map[string]string, quantity int, restaurant RestaurantRef) LineItem {
	c.applyScope(restaurant)

	if quantity < 1 {
		quantity = 1
	}
	if selectedOptions == nil {
		selectedOptions = map[string]string{}
	}

	for i := range c.Items {
		if c.Items[i].CatalogItemID == item.ID && optionsEqual(c.Items[i].SelectedOptions, selectedOptions) {
			c.Items[i].Quantity += quantity
			c.recomputeTotal()
			return c.Items[i]
		}
	}

	line := LineItem{
		ID:              uuid.NewString(),
		CatalogItemID:   item.ID,
		Name:            item.Name,
		UnitPriceCents:  item.PriceCents,
		ImageRef:        item.ImageRef,
		Quantity:        quantity,
		SelectedOptions: selectedOptions,
	}
	c.Items = append(c.Items, line)
	c.recomputeTotal()
	return line
}

// RemoveItem deletes the matching line. A missing id is a silent no-op.
// Removing the last line releases the restaurant scope.
func (c *Cart) RemoveItem(lineItemID string) {
	for i := range c.Items {
		if c.Items[i].ID == lineItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	if len(c.Items) == 0 {
		c.Restaurant = nil
	}
	c.recomputeTotal()
}

// UpdateQuantity sets the line's quantity, clamped to a floor of 1.
// Dropping to zero never deletes the line; only RemoveItem does that.
// A missing id is a silent no-op.
func (c *Cart) UpdateQuantity(lineItemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == lineItemID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.recomputeTotal()
}

// Clear empties the cart wholesale. Called after a server-confirmed
// order submission or on explicit user action.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.Restaurant = nil
	c.TotalCents = 0
}

// applyScope enforces the single-restaurant invariant: a cart only ever
// holds items added under one restaurant. Switching restaurants drops the
// previous items silently; warning the user is the UI's job.
func (c *Cart) applyScope(restaurant RestaurantRef) {
	if c.Restaurant == nil {
		c.Restaurant = &restaurant
		return
	}
	if c.Restaurant.ID == restaurant.ID {
		return
	}
	c.Items = []LineItem{}
	c.Restaurant = &restaurant
}

func (c *Cart) recomputeTotal() {
	var total int64
	for _, line := range c.Items {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	c.TotalCents = total
}

// optionsEqual compares selections in canonical form: same keys, same
// values, insertion order irrelevant.
func optionsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bv, ok := b[k]
		if !ok || a[k] != bv {
			return false
		}
	}
	return true
}
