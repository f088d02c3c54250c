package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickbite/internal/domain"
)

const orderColumns = `id::text, reference, restaurant_id::text, restaurant_name, restaurant_address, customer_id::text, delivery_address, phone, time_slot, instructions, payment_method, subtotal_cents, delivery_fee_cents, total_cents, status, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO orders (reference, restaurant_id, restaurant_name, restaurant_address, customer_id,
                    delivery_address, phone, time_slot, instructions, payment_method,
                    subtotal_cents, delivery_fee_cents, total_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'pending')
RETURNING ` + orderColumns + `
`
	var restaurantID interface{}
	if in.RestaurantID != "" {
		restaurantID = in.RestaurantID
	}
	ord, err := scanOrder(tx.QueryRow(ctx, q,
		in.Reference, restaurantID, in.RestaurantName, in.RestaurantAddress, in.CustomerID,
		in.DeliveryAddress, in.Phone, in.TimeSlot, in.Instructions, in.PaymentMethod,
		in.SubtotalCents, in.DeliveryFeeCents, in.TotalCents,
	))
	if err != nil {
		return nil, err
	}

	for _, item := range in.Items {
		opts := item.SelectedOptions
		if opts == nil {
			opts = map[string]string{}
		}
		var menuItemID interface{}
		if item.MenuItemID != "" {
			menuItemID = item.MenuItemID
		}
		var line domain.OrderItem
		if err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, menu_item_id, name, unit_price_cents, quantity, selected_options)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text
`, ord.ID, menuItemID, item.Name, item.UnitPriceCents, item.Quantity, opts).Scan(&line.ID); err != nil {
			return nil, err
		}
		line.OrderID = ord.ID
		line.MenuItemID = item.MenuItemID
		line.Name = item.Name
		line.UnitPriceCents = item.UnitPriceCents
		line.Quantity = item.Quantity
		line.SelectedOptions = opts
		ord.Items = append(ord.Items, line)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ord, nil
}

func (r *postgresRepo) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	return r.fetchOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE reference = $1`, reference)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.fetchOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.list(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE customer_id = $1
ORDER BY created_at DESC
`, customerID)
}

func (r *postgresRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return r.list(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE restaurant_id = $1
ORDER BY created_at DESC
`, restaurantID)
}

func (r *postgresRepo) ListByStatuses(ctx context.Context, statuses []string) ([]domain.Order, error) {
	return r.list(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE status = ANY($1)
ORDER BY created_at ASC
`, statuses)
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Stats(ctx context.Context) (*Stats, error) {
	const q = `
SELECT
	(SELECT COUNT(*) FROM orders),
	(SELECT COALESCE(SUM(total_cents), 0) FROM orders WHERE status <> 'cancelled'),
	(SELECT COUNT(*) FROM restaurants WHERE is_active),
	(SELECT COUNT(*) FROM users WHERE role = 'delivery')
`
	var s Stats
	if err := r.pool.QueryRow(ctx, q).Scan(&s.TotalOrders, &s.TotalRevenueCents, &s.ActiveRestaurants, &s.ActiveDrivers); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.loadItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *postgresRepo) fetchOne(ctx context.Context, q string, args ...interface{}) (*domain.Order, error) {
	ord, err := scanOrder(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.loadItems(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	ord.Items = items
	return ord, nil
}

func (r *postgresRepo) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT id::text, order_id::text, menu_item_id::text, name, unit_price_cents, quantity, selected_options
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var menuItemID *string
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&menuItemID,
			&item.Name,
			&item.UnitPriceCents,
			&item.Quantity,
			&item.SelectedOptions,
		); err != nil {
			return nil, err
		}
		if menuItemID != nil {
			item.MenuItemID = *menuItemID
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var ord domain.Order
	var restaurantID *string
	var customerID *string
	if err := row.Scan(
		&ord.ID,
		&ord.Reference,
		&restaurantID,
		&ord.RestaurantName,
		&ord.RestaurantAddress,
		&customerID,
		&ord.DeliveryAddress,
		&ord.Phone,
		&ord.TimeSlot,
		&ord.Instructions,
		&ord.PaymentMethod,
		&ord.SubtotalCents,
		&ord.DeliveryFeeCents,
		&ord.TotalCents,
		&ord.Status,
		&ord.CreatedAt,
	); err != nil {
		return nil, err
	}
	if restaurantID != nil {
		ord.RestaurantID = *restaurantID
	}
	ord.CustomerID = customerID
	return &ord, nil
}
