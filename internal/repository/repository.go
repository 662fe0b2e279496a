package repository

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// PostFilter selects the posts backing a listing. Results are ordered by
// pub_date descending, ties broken by id descending.
type PostFilter struct {
	Scope        policy.PostScope
	AuthorID     *uuid.UUID
	CategorySlug string
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	// FindByID ignores visibility; callers apply policy.IsVisibleTo.
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
	Find(ctx context.Context, filter PostFilter, limit int, offset int) ([]*model.FullPost, error)
	Update(ctx context.Context, post model.Post) (*model.Post, error)
	Delete(ctx context.Context, id int64, authorID uuid.UUID) error
}

// Comment reads only comments passing policy.IsCommentVisible.
type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindVisibleByID(ctx context.Context, id int64) (*model.Comment, error)
	// FindByPost returns comments oldest first.
	FindByPost(ctx context.Context, postID int64) ([]*model.FullComment, error)
	Update(ctx context.Context, id int64, authorID uuid.UUID, text string) (*model.Comment, error)
	Delete(ctx context.Context, id int64, authorID uuid.UUID) error
}

type Category interface {
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
}

type Location interface {
	FindByID(ctx context.Context, id int64) (*model.Location, error)
}

type User interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, user model.User) (*model.User, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Post
	Comment
	Category
	Location
	User
	Pinger
}
