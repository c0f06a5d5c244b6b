package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"books_scraper/config"
	"books_scraper/migrations"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func MustInitPostgres(cfg *config.Config) *sqlx.DB {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DbName,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		slog.Error("Error while connecting Postgres", slog.String("error", err.Error()))
		panic(err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)

	mustMigrate(db)

	slog.Info("Postgres connected")

	return db
}

func mustMigrate(db *sqlx.DB) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		slog.Error("Error while reading embedded migrations", slog.String("error", err.Error()))
		panic(err)
	}

	driver, err := pgxmigrate.WithInstance(db.DB, &pgxmigrate.Config{})
	if err != nil {
		slog.Error("Error while creating migrate driver", slog.String("error", err.Error()))
		panic(err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		slog.Error("Error while creating migrate instance", slog.String("error", err.Error()))
		panic(err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		slog.Error("Error while applying migrations", slog.String("error", err.Error()))
		panic(err)
	}
}
