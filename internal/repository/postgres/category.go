package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepo struct {
	db *pgxpool.Pool
}

func newCategoryRepo(db *pgxpool.Pool) repository.Category {
	return &categoryRepo{
		db: db,
	}
}

func (r *categoryRepo) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	return r.findOne(ctx, "c.id = $1", id)
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return r.findOne(ctx, "c.slug = $1", slug)
}

func (r *categoryRepo) findOne(ctx context.Context, cond string, arg interface{}) (*model.Category, error) {
	var category model.Category
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id, c.title, c.description, c.slug, c.is_published, c.created_at FROM categories c WHERE "+cond,
		arg,
	).Scan(
		&category.ID,
		&category.Title,
		&category.Description,
		&category.Slug,
		&category.IsPublished,
		&category.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	return &category, nil
}

type locationRepo struct {
	db *pgxpool.Pool
}

func newLocationRepo(db *pgxpool.Pool) repository.Location {
	return &locationRepo{
		db: db,
	}
}

func (r *locationRepo) FindByID(ctx context.Context, id int64) (*model.Location, error) {
	var location model.Location
	if err := r.db.QueryRow(
		ctx,
		"SELECT l.id, l.name, l.is_published, l.created_at FROM locations l WHERE l.id = $1",
		id,
	).Scan(
		&location.ID,
		&location.Name,
		&location.IsPublished,
		&location.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	return &location, nil
}
