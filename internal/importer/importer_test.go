package importer

import (
	"context"
	"strings"
	"testing"

	"quickbite/internal/domain"
)

type stubRestaurantRepo struct {
	items []domain.Restaurant
}

func (s *stubRestaurantRepo) Upsert(_ context.Context, r domain.Restaurant) (*domain.Restaurant, error) {
	r.ID = "rest-" + r.Name
	s.items = append(s.items, r)
	return &r, nil
}

type stubMenuRepo struct {
	items []domain.MenuItem
}

func (s *stubMenuRepo) UpsertItem(_ context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	s.items = append(s.items, item)
	return &item, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `restaurant.name,restaurant.category,restaurant.address,restaurant.deliveryTime,item.name,item.description,item.priceCents,item.image,item.available
Chez Maman,Africain,12 Rue du Marche,25-35 min,Poulet braise,Poulet entier braise,3500,,true
,,,,Attieke poisson,Attieke et poisson grille,2500,,true
Burger Square,Fast-food,Boulevard du 13 Janvier,15-25 min,Classic burger,Boeuf et cheddar,4000,,false`

	restaurants := &stubRestaurantRepo{}
	menus := &stubMenuRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), restaurants, menus)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 items imported, got %d", count)
	}
	if len(restaurants.items) != 2 {
		t.Fatalf("expected 2 restaurants saved, got %d", len(restaurants.items))
	}

	if restaurants.items[0].Name != "Chez Maman" || restaurants.items[0].Category != "Africain" || !restaurants.items[0].IsActive {
		t.Fatalf("unexpected restaurant data: %+v", restaurants.items[0])
	}
	if menus.items[0].RestaurantID != "rest-Chez Maman" || menus.items[0].PriceCents != 3500 {
		t.Fatalf("unexpected item data: %+v", menus.items[0])
	}
	if menus.items[1].RestaurantID != "rest-Chez Maman" {
		t.Fatalf("continuation row should attach to current restaurant, got %+v", menus.items[1])
	}
	if menus.items[2].RestaurantID != "rest-Burger Square" || menus.items[2].IsAvailable {
		t.Fatalf("unexpected third item: %+v", menus.items[2])
	}
}

func TestCSVImporter_ItemBeforeRestaurant(t *testing.T) {
	csvData := `restaurant.name,restaurant.address,item.name,item.priceCents
,,Orphan item,1000`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubRestaurantRepo{}, &stubMenuRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for item without restaurant")
	}
}

func TestCSVImporter_RestaurantOnlyRow(t *testing.T) {
	csvData := `restaurant.name,restaurant.category,restaurant.address,item.name,item.priceCents
Pizza Bella,Pizza,Kodjoviakope,,
,,,Margherita,5000`

	restaurants := &stubRestaurantRepo{}
	menus := &stubMenuRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), restaurants, menus)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 || len(restaurants.items) != 1 {
		t.Fatalf("expected 1 item under 1 restaurant, got %d/%d", count, len(restaurants.items))
	}
}
