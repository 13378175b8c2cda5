package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/food_orders/config"
	"github.com/Gunvolt24/food_orders/internal/repo/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Ручное управление схемой БД: up | down | status.
func main() {
	_ = godotenv.Load(".env.local")

	dsn := flag.String("dsn", "", "postgres DSN (default: FOOD_DSN from environment)")
	command := flag.String("command", postgres.MigrateUp, "goose command: up|down|status")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		*dsn = cfg.Postgres.DSN
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := postgres.MigrateDB(ctx, db, *command); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", *command, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "migrate %s ok\n", *command)
}
