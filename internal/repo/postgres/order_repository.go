package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

const orderColumns = `id, customer_id, vendor_id, status, total_price, address, version, created_at, updated_at`

// OrderRepository - заказы и их строки блюд в Postgres.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// FindOrder - заказ со строками; (nil, nil), если заказа нет.
func (r *OrderRepository) FindOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order %s: %w", id, err)
	}

	if err := r.attachLines(ctx, []*domain.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == uuid.Nil {
		return errors.New("order is empty or id is required")
	}
	if order.Version <= 0 {
		order.Version = 1
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			order.ID, order.CustomerID, order.VendorID, string(order.Status), toNumeric(order.TotalPrice),
			order.Address, order.Version, order.CreatedAt, order.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return copyLines(ctx, tx, order.ID, order.DishLines)
	})
}

// Update - сохраняет заказ при совпадении версии и заменяет строки целиком.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == uuid.Nil {
		return errors.New("order is empty or id is required")
	}

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE orders SET
				status = $3,
				total_price = $4,
				address = $5,
				updated_at = $6,
				version = version + 1
			WHERE id = $1 AND version = $2
		`,
			order.ID, order.Version, string(order.Status), toNumeric(order.TotalPrice), order.Address, order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrVersionConflict
		}

		if _, err := tx.Exec(ctx, `DELETE FROM order_dish_lines WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}
		return copyLines(ctx, tx, order.ID, order.DishLines)
	})
	if err != nil {
		return err
	}

	order.Version++
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// List - страница заказов по фильтру, новые первыми.
func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	if filter.Limit <= 0 {
		return []*domain.Order{}, nil
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE ($1::uuid IS NULL OR customer_id = $1)
		  AND ($2::uuid IS NULL OR vendor_id = $2)
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4
	`, nullableUUID(filter.CustomerID), nullableUUID(filter.VendorID), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return r.collect(ctx, rows)
}

// LastN - последние изменённые заказы (прогрев кэша).
func (r *OrderRepository) LastN(ctx context.Context, n int) ([]*domain.Order, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY updated_at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last orders: %w", err)
	}
	return r.collect(ctx, rows)
}

// collect - читает заказы страницы и догружает строки одним запросом.
func (r *OrderRepository) collect(ctx context.Context, rows pgx.Rows) ([]*domain.Order, error) {
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	rows.Close()

	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachLines - строки блюд для набора заказов, порядок по position.
func (r *OrderRepository) attachLines(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		o.DishLines = []domain.DishLine{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT order_id, dish_id, unit_price
		FROM order_dish_lines
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("select dish lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			line    domain.DishLine
			price   pgtype.Numeric
		)
		if err := rows.Scan(&orderID, &line.DishID, &price); err != nil {
			return fmt.Errorf("scan dish line: %w", err)
		}
		line.UnitPrice = fromNumeric(price)
		if o := byID[orderID]; o != nil {
			o.DishLines = append(o.DishLines, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("dish lines rows: %w", err)
	}
	return nil
}

func (r *OrderRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// после Commit Rollback вернёт ErrTxClosed
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		status string
		total  pgtype.Numeric
	)
	if err := row.Scan(
		&o.ID, &o.CustomerID, &o.VendorID, &status, &total, &o.Address, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	o.TotalPrice = fromNumeric(total)
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}

// copyLines - вставка строк через COPY; position сохраняет порядок добавления.
func copyLines(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, lines []domain.DishLine) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(lines))
	for i, line := range lines {
		rows = append(rows, []any{orderID, int32(i), line.DishID, toNumeric(line.UnitPrice)})
	}

	if _, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_dish_lines"},
		[]string{"order_id", "position", "dish_id", "unit_price"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy dish lines: %w", err)
	}
	return nil
}

// now - время записи с точностью Postgres.
func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
