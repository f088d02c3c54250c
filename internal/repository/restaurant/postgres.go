package restaurant

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickbite/internal/domain"
)

const restaurantColumns = `id::text, name, description, address, category, rating, delivery_time, image_ref, is_active, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Restaurant, error) {
	q := `
SELECT ` + restaurantColumns + `
FROM restaurants
WHERE is_active
`
	args := []interface{}{}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		q += ` AND (name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1)`
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		args = append(args, c)
		if len(args) == 1 {
			q += ` AND category = $1`
		} else {
			q += ` AND category = $2`
		}
	}
	q += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rest)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const q = `
SELECT ` + restaurantColumns + `
FROM restaurants
WHERE id = $1
`
	return r.fetchOne(ctx, q, id)
}

// Upsert inserts or refreshes a restaurant keyed by its unique name.
// Used by the seeder and the CSV importer.
func (r *postgresRepo) Upsert(ctx context.Context, rest domain.Restaurant) (*domain.Restaurant, error) {
	const q = `
INSERT INTO restaurants (name, description, address, category, rating, delivery_time, image_ref, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    address = EXCLUDED.address,
    category = EXCLUDED.category,
    rating = EXCLUDED.rating,
    delivery_time = EXCLUDED.delivery_time,
    image_ref = EXCLUDED.image_ref,
    is_active = EXCLUDED.is_active
RETURNING ` + restaurantColumns + `
`
	row := r.pool.QueryRow(ctx, q, rest.Name, rest.Description, rest.Address, rest.Category, rest.Rating, rest.DeliveryTime, rest.ImageRef, rest.IsActive)
	return scanRestaurant(row)
}

func (r *postgresRepo) fetchOne(ctx context.Context, q string, args ...interface{}) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := row.Scan(
		&rest.ID,
		&rest.Name,
		&rest.Description,
		&rest.Address,
		&rest.Category,
		&rest.Rating,
		&rest.DeliveryTime,
		&rest.ImageRef,
		&rest.IsActive,
		&rest.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rest, nil
}
