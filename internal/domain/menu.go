package domain

import "time"

type MenuItem struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	PriceCents   int64        `json:"priceCents"`
	ImageRef     string       `json:"image,omitempty"`
	IsAvailable  bool         `json:"isAvailable"`
	Options      []MenuOption `json:"options,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// MenuOption is a group of choices attached to a menu item, e.g. "Size"
// with choices S/M/L. Required groups must be picked before adding to cart;
// that enforcement lives in the UI, not the cart engine.
type MenuOption struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	IsRequired bool           `json:"isRequired"`
	Choices    []OptionChoice `json:"choices"`
}

type OptionChoice struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}
