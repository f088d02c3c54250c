// Package seed loads demo data for manual testing: a handful of
// restaurants with menus and one demo account per role. Safe to run
// repeatedly; everything upserts.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"quickbite/internal/domain"
	menurepo "quickbite/internal/repository/menu"
	restaurantrepo "quickbite/internal/repository/restaurant"
)

const demoPassword = "demo123"

type restaurantSeed struct {
	Restaurant domain.Restaurant
	Menu       []domain.MenuItem
}

type accountSeed struct {
	Name        string
	Email       string
	Phone       string
	Role        string
	VehicleType string
	// LinkRestaurant names the seeded restaurant this account manages.
	LinkRestaurant string
}

func restaurants() []restaurantSeed {
	return []restaurantSeed{
		{
			Restaurant: domain.Restaurant{
				Name:         "Chez Maman",
				Description:  "Cuisine togolaise maison",
				Address:      "12 Rue du Marche, Lome",
				Category:     "Africain",
				Rating:       4.7,
				DeliveryTime: "25-35 min",
				IsActive:     true,
			},
			Menu: []domain.MenuItem{
				{
					Name:        "Poulet braise",
					Description: "Poulet entier braise, servi avec piment maison",
					PriceCents:  3500,
					IsAvailable: true,
					Options: []domain.MenuOption{
						{
							Name:       "Accompagnement",
							IsRequired: true,
							Choices: []domain.OptionChoice{
								{Name: "Attieke", PriceCents: 0},
								{Name: "Alloco", PriceCents: 500},
								{Name: "Riz", PriceCents: 0},
							},
						},
						{
							Name: "Piment",
							Choices: []domain.OptionChoice{
								{Name: "Doux", PriceCents: 0},
								{Name: "Fort", PriceCents: 0},
							},
						},
					},
				},
				{
					Name:        "Attieke poisson",
					Description: "Attieke frais et poisson grille",
					PriceCents:  2500,
					IsAvailable: true,
				},
				{
					Name:        "Fufu sauce arachide",
					Description: "Fufu pile, sauce arachide et viande de boeuf",
					PriceCents:  3000,
					IsAvailable: true,
				},
			},
		},
		{
			Restaurant: domain.Restaurant{
				Name:         "Burger Square",
				Description:  "Burgers et frites maison",
				Address:      "Boulevard du 13 Janvier, Lome",
				Category:     "Fast-food",
				Rating:       4.3,
				DeliveryTime: "15-25 min",
				IsActive:     true,
			},
			Menu: []domain.MenuItem{
				{
					Name:        "Classic burger",
					Description: "Boeuf, cheddar, salade, sauce maison",
					PriceCents:  4000,
					IsAvailable: true,
					Options: []domain.MenuOption{
						{
							Name:       "Taille",
							IsRequired: true,
							Choices: []domain.OptionChoice{
								{Name: "Simple", PriceCents: 0},
								{Name: "Double", PriceCents: 1500},
							},
						},
					},
				},
				{
					Name:        "Frites",
					Description: "Portion de frites fraiches",
					PriceCents:  1000,
					IsAvailable: true,
				},
			},
		},
		{
			Restaurant: domain.Restaurant{
				Name:         "Pizza Bella",
				Description:  "Pizzas au feu de bois",
				Address:      "Quartier Kodjoviakope, Lome",
				Category:     "Pizza",
				Rating:       4.5,
				DeliveryTime: "30-40 min",
				IsActive:     true,
			},
			Menu: []domain.MenuItem{
				{
					Name:        "Margherita",
					Description: "Tomate, mozzarella, basilic",
					PriceCents:  5000,
					IsAvailable: true,
				},
				{
					Name:        "Quatre fromages",
					Description: "Mozzarella, gorgonzola, chevre, parmesan",
					PriceCents:  6500,
					IsAvailable: true,
				},
			},
		},
	}
}

func accounts() []accountSeed {
	return []accountSeed{
		{Name: "Ama Client", Email: "client@demo.com", Phone: "+22890000001", Role: domain.RoleCustomer},
		{Name: "Chez Maman", Email: "restaurant@demo.com", Phone: "+22890000002", Role: domain.RoleRestaurant, LinkRestaurant: "Chez Maman"},
		{Name: "Koffi Livreur", Email: "livreur@demo.com", Phone: "+22890000003", Role: domain.RoleDelivery, VehicleType: "moto"},
		{Name: "Admin", Email: "admin@demo.com", Phone: "+22890000004", Role: domain.RoleAdmin},
	}
}

// Apply inserts the demo dataset. Idempotent via upserts keyed on
// restaurant name, (restaurant, item name) and user email.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	restaurantRepo := restaurantrepo.NewPostgres(pool)
	menuRepo := menurepo.NewPostgres(pool)

	restaurantIDs := map[string]string{}
	for _, rs := range restaurants() {
		saved, err := restaurantRepo.Upsert(ctx, rs.Restaurant)
		if err != nil {
			return fmt.Errorf("upsert restaurant %s: %w", rs.Restaurant.Name, err)
		}
		restaurantIDs[saved.Name] = saved.ID

		for _, item := range rs.Menu {
			item.RestaurantID = saved.ID
			if _, err := menuRepo.UpsertItem(ctx, item); err != nil {
				return fmt.Errorf("upsert menu item %s/%s: %w", rs.Restaurant.Name, item.Name, err)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	for _, acc := range accounts() {
		var restaurantID *string
		if acc.LinkRestaurant != "" {
			id, ok := restaurantIDs[acc.LinkRestaurant]
			if !ok {
				return fmt.Errorf("account %s links unknown restaurant %q", acc.Email, acc.LinkRestaurant)
			}
			restaurantID = &id
		}
		if err := upsertAccount(ctx, pool, acc, string(hash), restaurantID); err != nil {
			return fmt.Errorf("upsert account %s: %w", acc.Email, err)
		}
	}
	return nil
}

func upsertAccount(ctx context.Context, pool *pgxpool.Pool, acc accountSeed, passwordHash string, restaurantID *string) error {
	const q = `
INSERT INTO users (name, email, phone, role, password_hash, vehicle_type, restaurant_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (email) DO UPDATE
SET name = EXCLUDED.name,
    phone = EXCLUDED.phone,
    role = EXCLUDED.role,
    password_hash = EXCLUDED.password_hash,
    vehicle_type = EXCLUDED.vehicle_type,
    restaurant_id = EXCLUDED.restaurant_id
`
	_, err := pool.Exec(ctx, q, acc.Name, acc.Email, acc.Phone, acc.Role, passwordHash, acc.VehicleType, restaurantID)
	return err
}
