package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectUser = "SELECT u.id, u.username, u.first_name, u.last_name, u.email, u.bio, u.avatar_url, u.created_at FROM users u"

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) repository.User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, selectUser+" WHERE u.id = $1", id)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, selectUser+" WHERE u.username = $1", username)
}

func (r *userRepo) Update(ctx context.Context, user model.User) (*model.User, error) {
	return r.findOne(
		ctx,
		`UPDATE users u SET first_name = $1, last_name = $2, email = $3, bio = $4, avatar_url = $5
		WHERE u.id = $6
		RETURNING u.id, u.username, u.first_name, u.last_name, u.email, u.bio, u.avatar_url, u.created_at`,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Bio,
		user.AvatarURL,
		user.ID,
	)
}

func (r *userRepo) findOne(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Bio,
		&user.AvatarURL,
		&user.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}
