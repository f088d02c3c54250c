package domain

import "time"

type Restaurant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address"`
	Category     string    `json:"category"`
	Rating       float64   `json:"rating"`
	DeliveryTime string    `json:"deliveryTime,omitempty"`
	ImageRef     string    `json:"image,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
