package restaurant

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"quickbite/internal/domain"
	"quickbite/internal/migrate"
)

func TestPostgres_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)

	created, err := repo.Upsert(ctx, domain.Restaurant{
		Name:     "Chez Maman",
		Address:  "12 Rue du Marche",
		Category: "Africain",
		Rating:   4.5,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected ID set")
	}

	updated, err := repo.Upsert(ctx, domain.Restaurant{
		Name:     "Chez Maman",
		Address:  "15 Rue du Marche",
		Category: "Africain",
		Rating:   4.7,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatal("expected same ID after update")
	}
	if updated.Address != "15 Rue du Marche" || updated.Rating != 4.7 {
		t.Fatalf("unexpected updated restaurant %+v", updated)
	}

	if _, err := repo.Upsert(ctx, domain.Restaurant{
		Name: "Pizza Bella", Address: "Kodjoviakope", Category: "Pizza", IsActive: true,
	}); err != nil {
		t.Fatalf("Upsert second: %v", err)
	}
	if _, err := repo.Upsert(ctx, domain.Restaurant{
		Name: "Closed Spot", Address: "Nowhere", Category: "Africain", IsActive: false,
	}); err != nil {
		t.Fatalf("Upsert inactive: %v", err)
	}

	all, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 active restaurants, got %d", len(all))
	}

	byCategory, err := repo.List(ctx, ListFilter{Category: "Pizza"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Name != "Pizza Bella" {
		t.Fatalf("unexpected category result %+v", byCategory)
	}

	bySearch, err := repo.List(ctx, ListFilter{Search: "maman"})
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Name != "Chez Maman" {
		t.Fatalf("unexpected search result %+v", bySearch)
	}

	if _, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("db not reachable: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, option_choices, menu_options, menu_items, users, restaurants RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
