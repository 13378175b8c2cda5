package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.DishRepository = (*DishRepository)(nil)

const dishColumns = `id, vendor_id, name, description, unit_price, created_at`

// DishRepository - меню вендоров в Postgres.
type DishRepository struct {
	pool *pgxpool.Pool
}

func NewDishRepository(pool *pgxpool.Pool) *DishRepository { return &DishRepository{pool: pool} }

func (r *DishRepository) FindDish(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	dish, err := scanDish(r.pool.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select dish %s: %w", id, err)
	}
	return dish, nil
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	if dish == nil || dish.ID == uuid.Nil {
		return errors.New("dish is empty or id is required")
	}
	if dish.CreatedAt.IsZero() {
		dish.CreatedAt = now()
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO dishes (id, vendor_id, name, description, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, dish.ID, dish.VendorID, dish.Name, dish.Description, toNumeric(dish.UnitPrice), dish.CreatedAt); err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}
	return nil
}

// Update - меняет название, описание и цену; вендор блюда не меняется.
func (r *DishRepository) Update(ctx context.Context, dish *domain.Dish) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE dishes SET name = $2, description = $3, unit_price = $4, updated_at = $5
		WHERE id = $1
	`, dish.ID, dish.Name, dish.Description, toNumeric(dish.UnitPrice), now())
	if err != nil {
		return false, fmt.Errorf("update dish %s: %w", dish.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DishRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete dish %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DishRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*domain.Dish, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+dishColumns+`
		FROM dishes
		WHERE vendor_id = $1
		ORDER BY name, id
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("select dishes: %w", err)
	}
	defer rows.Close()

	dishes := make([]*domain.Dish, 0)
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dishes rows: %w", err)
	}
	return dishes, nil
}

func scanDish(row pgx.Row) (*domain.Dish, error) {
	var (
		d     domain.Dish
		price pgtype.Numeric
	)
	if err := row.Scan(&d.ID, &d.VendorID, &d.Name, &d.Description, &price, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.UnitPrice = fromNumeric(price)
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}
