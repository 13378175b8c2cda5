//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/food_orders/internal/domain"
	pgrepo "github.com/Gunvolt24/food_orders/internal/repo/postgres"
	"github.com/Gunvolt24/food_orders/internal/testutil"
)

// startDB - Postgres в контейнере с накатанными миграциями; ctx - на сами операции.
func startDB(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgrepo.NewPool(ctx, pg.DSN, 5)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return ctx, pool
}

func TestOrderRepo_CreateAndFind_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewOrderRepository(pool)

	ord := testutil.MakeOrder(testutil.WithDishes(3))
	require.NoError(t, repo.Create(ctx, &ord))

	got, err := repo.FindOrder(ctx, ord.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, ord.ID, got.ID)
	require.Equal(t, ord.CustomerID, got.CustomerID)
	require.Equal(t, ord.Address, got.Address)
	require.Equal(t, domain.StatusPending, got.Status)
	require.Equal(t, int64(1), got.Version)
	require.True(t, ord.TotalPrice.Equal(got.TotalPrice), "total %s != %s", ord.TotalPrice, got.TotalPrice)

	// порядок строк сохраняется
	require.Len(t, got.DishLines, 3)
	for i := range ord.DishLines {
		require.Equal(t, ord.DishLines[i].DishID, got.DishLines[i].DishID)
		require.True(t, ord.DishLines[i].UnitPrice.Equal(got.DishLines[i].UnitPrice))
	}

	missing, err := repo.FindOrder(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestOrderRepo_Update_VersionCheckAndLinesReplace_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewOrderRepository(pool)

	ord := testutil.MakeOrder(testutil.WithDishes(2))
	require.NoError(t, repo.Create(ctx, &ord))

	first, err := repo.FindOrder(ctx, ord.ID)
	require.NoError(t, err)
	second, err := repo.FindOrder(ctx, ord.ID)
	require.NoError(t, err)

	// первый писатель: одно блюдо x4
	dish := testutil.MakeDish(ord.VendorID, "2.25")
	first.DishLines = nil
	first.AddDish(dish, 4)
	require.NoError(t, repo.Update(ctx, first))
	require.Equal(t, int64(2), first.Version)

	// второй писатель со старой версией проигрывает
	second.Status = domain.StatusAccepted
	err = repo.Update(ctx, second)
	require.True(t, errors.Is(err, domain.ErrVersionConflict), "want version conflict, got %v", err)

	got, err := repo.FindOrder(ctx, ord.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, domain.StatusPending, got.Status)
	require.Equal(t, 4, got.QuantityOf(dish.ID))
	require.Len(t, got.DishLines, 4)
	require.True(t, decimal.RequireFromString("9").Equal(got.TotalPrice))
}

func TestOrderRepo_Delete_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewOrderRepository(pool)

	ord := testutil.MakeOrder(testutil.WithDishes(1))
	require.NoError(t, repo.Create(ctx, &ord))

	deleted, err := repo.Delete(ctx, ord.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(ctx, ord.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	var lines int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM order_dish_lines WHERE order_id = $1`, ord.ID).Scan(&lines))
	require.Zero(t, lines, "lines must be removed with the order")
}

func TestOrderRepo_List_FilterAndPagination_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewOrderRepository(pool)

	customer, vendor := uuid.New(), uuid.New()
	base := time.Now().UTC().Truncate(time.Microsecond)

	var mine []uuid.UUID
	for i := 0; i < 3; i++ {
		ord := testutil.MakeOrder(testutil.WithCustomer(customer), testutil.WithVendor(vendor))
		ord.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, &ord))
		mine = append(mine, ord.ID)
	}
	other := testutil.MakeOrder(testutil.WithVendor(vendor))
	require.NoError(t, repo.Create(ctx, &other))

	page, err := repo.List(ctx, domain.OrderFilter{CustomerID: customer, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, mine[2], page[0].ID) // новые первыми
	require.Equal(t, mine[1], page[1].ID)

	page, err = repo.List(ctx, domain.OrderFilter{CustomerID: customer, Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, mine[0], page[0].ID)

	byVendor, err := repo.List(ctx, domain.OrderFilter{VendorID: vendor, Limit: 10})
	require.NoError(t, err)
	require.Len(t, byVendor, 4)

	empty, err := repo.List(ctx, domain.OrderFilter{CustomerID: customer, Limit: 0})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestOrderRepo_LastN_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewOrderRepository(pool)

	base := time.Now().UTC().Truncate(time.Microsecond)
	ids := make([]uuid.UUID, 0, 3)
	for i := 0; i < 3; i++ {
		ord := testutil.MakeOrder(testutil.WithDishes(i + 1))
		ord.UpdatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, &ord))
		ids = append(ids, ord.ID)
	}

	last, err := repo.LastN(ctx, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	require.Equal(t, ids[2], last[0].ID)
	require.Len(t, last[0].DishLines, 3)
	require.Equal(t, ids[1], last[1].ID)

	none, err := repo.LastN(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOrderRepo_Create_InputErrors_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewOrderRepository(pool)

	require.Error(t, repo.Create(ctx, nil))
	require.Error(t, repo.Create(ctx, &domain.Order{}))

	ord := testutil.MakeOrder()
	require.NoError(t, repo.Create(ctx, &ord))
	require.Error(t, repo.Create(ctx, &ord), "duplicate id must fail")
}

func TestDishRepo_CRUD_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)
	repo := pgrepo.NewDishRepository(pool)

	vendor := uuid.New()
	soup := testutil.MakeDish(vendor, "4.20")
	soup.Name = "Borscht"
	salad := testutil.MakeDish(vendor, "3.00")
	salad.Name = "Caesar"
	require.NoError(t, repo.Create(ctx, &salad))
	require.NoError(t, repo.Create(ctx, &soup))
	foreign := testutil.MakeDish(uuid.New(), "1")
	require.NoError(t, repo.Create(ctx, &foreign))

	got, err := repo.FindDish(ctx, soup.ID)
	require.NoError(t, err)
	require.Equal(t, vendor, got.VendorID)
	require.True(t, decimal.RequireFromString("4.2").Equal(got.UnitPrice))

	menu, err := repo.ListByVendor(ctx, vendor)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	require.Equal(t, "Borscht", menu[0].Name)

	soup.UnitPrice = decimal.RequireFromString("5.10")
	ok, err := repo.Update(ctx, &soup)
	require.NoError(t, err)
	require.True(t, ok)
	got, err = repo.FindDish(ctx, soup.ID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("5.1").Equal(got.UnitPrice))

	ok, err = repo.Update(ctx, &domain.Dish{ID: uuid.New(), Name: "ghost"})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.Delete(ctx, soup.ID)
	require.NoError(t, err)
	require.True(t, ok)
	missing, err := repo.FindDish(ctx, soup.ID)
	require.NoError(t, err)
	require.Nil(t, missing)
}
