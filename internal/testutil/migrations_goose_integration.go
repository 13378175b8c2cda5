//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"

	pgrepo "github.com/Gunvolt24/food_orders/internal/repo/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
)

// ApplyMigrationsGoose - накатывает встроенные миграции на базу по DSN.
func ApplyMigrationsGoose(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	return pgrepo.MigrateDB(context.Background(), db, pgrepo.MigrateUp)
}
