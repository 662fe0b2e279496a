package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}

// Bootstrap creates missing tables and indexes. It is safe to run on every start.
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func New(db *pgxpool.Pool) *repository.Repository {
	return &repository.Repository{
		Post:     newPostRepo(db),
		Comment:  newCommentRepo(db),
		Category: newCategoryRepo(db),
		Location: newLocationRepo(db),
		User:     newUserRepo(db),
		Pinger:   db,
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
