package repository

import (
	"context"
	"fmt"
	"log/slog"

	"books_scraper/internal/model"
	"books_scraper/utils"

	"github.com/jmoiron/sqlx"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) IsEmpty(ctx context.Context) (bool, error) {
	op := "Postgres.IsEmpty"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT EXISTS (SELECT 1 FROM books)`

	var exists bool
	err := r.db.QueryRowxContext(ctx, query).Scan(&exists)
	if err != nil {
		slog.Error(
			"Failed to check whether books table is empty",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
		)
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return !exists, nil
}

func (r *Postgres) InsertBooks(ctx context.Context, books []model.Book) error {
	op := "Postgres.InsertBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO books (title, price, rating, description) VALUES (:title, :price, :rating, :description)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		slog.Error(
			"Failed to begin tx",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	for _, book := range books {
		if _, err := tx.NamedExecContext(ctx, query, book); err != nil {
			slog.Error(
				"Failed to insert book",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("err", err.Error()),
				slog.String("title", book.Title),
			)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error(
			"Failed to commit tx",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Info(
		"Books inserted successfully to DB",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("count", len(books)),
	)
	return nil
}

func (r *Postgres) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	op := "Postgres.GetAllBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT title, price, rating, description FROM books ORDER BY id`

	books := make([]model.Book, 0)
	err := r.db.SelectContext(ctx, &books, query)
	if err != nil {
		slog.Error(
			"Failed to get books",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slog.Info(
		"Got books from DB",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("count", len(books)),
	)
	return books, nil
}
