package domain

import "time"

// Roles gate the four dashboards.
const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
	RoleDelivery   = "delivery"
	RoleAdmin      = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	RestaurantID *string   `json:"restaurantId,omitempty"`
	VehicleType  string    `json:"vehicleType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
