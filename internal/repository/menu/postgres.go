package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickbite/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	const q = `
SELECT id::text, restaurant_id::text, name, description, price_cents, image_ref, is_available, created_at
FROM menu_items
WHERE restaurant_id = $1
ORDER BY created_at ASC, name ASC
`
	rows, err := r.pool.Query(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Description,
			&item.PriceCents,
			&item.ImageRef,
			&item.IsAvailable,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		options, err := r.loadOptions(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Options = options
	}
	return items, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	const q = `
SELECT id::text, restaurant_id::text, name, description, price_cents, image_ref, is_available, created_at
FROM menu_items
WHERE id = $1
`
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Description,
		&item.PriceCents,
		&item.ImageRef,
		&item.IsAvailable,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	options, err := r.loadOptions(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	item.Options = options
	return &item, nil
}

// UpsertItem inserts or refreshes a menu item keyed by (restaurant, name),
// replacing its option groups wholesale. Used by the seeder and importer.
func (r *postgresRepo) UpsertItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO menu_items (restaurant_id, name, description, price_cents, image_ref, is_available)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (restaurant_id, name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image_ref = EXCLUDED.image_ref,
    is_available = EXCLUDED.is_available
RETURNING id::text, restaurant_id::text, name, description, price_cents, image_ref, is_available, created_at
`
	var saved domain.MenuItem
	if err := tx.QueryRow(ctx, q, item.RestaurantID, item.Name, item.Description, item.PriceCents, item.ImageRef, item.IsAvailable).Scan(
		&saved.ID,
		&saved.RestaurantID,
		&saved.Name,
		&saved.Description,
		&saved.PriceCents,
		&saved.ImageRef,
		&saved.IsAvailable,
		&saved.CreatedAt,
	); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM menu_options WHERE menu_item_id = $1`, saved.ID); err != nil {
		return nil, err
	}
	for _, opt := range item.Options {
		var optionID string
		if err := tx.QueryRow(ctx, `
INSERT INTO menu_options (menu_item_id, name, is_required)
VALUES ($1, $2, $3)
RETURNING id::text
`, saved.ID, opt.Name, opt.IsRequired).Scan(&optionID); err != nil {
			return nil, err
		}
		for _, choice := range opt.Choices {
			if _, err := tx.Exec(ctx, `
INSERT INTO option_choices (menu_option_id, name, price_cents)
VALUES ($1, $2, $3)
`, optionID, choice.Name, choice.PriceCents); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	saved.Options = item.Options
	return &saved, nil
}

func (r *postgresRepo) loadOptions(ctx context.Context, menuItemID string) ([]domain.MenuOption, error) {
	const q = `
SELECT o.id::text, o.name, o.is_required, c.id::text, c.name, c.price_cents
FROM menu_options o
LEFT JOIN option_choices c ON c.menu_option_id = o.id
WHERE o.menu_item_id = $1
ORDER BY o.name ASC, c.name ASC
`
	rows, err := r.pool.Query(ctx, q, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []domain.MenuOption
	index := map[string]int{}
	for rows.Next() {
		var (
			optID, optName string
			isRequired     bool
			choiceID       *string
			choiceName     *string
			choicePrice    *int64
		)
		if err := rows.Scan(&optID, &optName, &isRequired, &choiceID, &choiceName, &choicePrice); err != nil {
			return nil, err
		}
		i, ok := index[optID]
		if !ok {
			options = append(options, domain.MenuOption{ID: optID, Name: optName, IsRequired: isRequired})
			i = len(options) - 1
			index[optID] = i
		}
		if choiceID != nil {
			options[i].Choices = append(options[i].Choices, domain.OptionChoice{
				ID:         *choiceID,
				Name:       *choiceName,
				PriceCents: *choicePrice,
			})
		}
	}
	return options, rows.Err()
}
