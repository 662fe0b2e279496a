package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Author, category, location and the visible comment count come back in the
// same row so a page of posts costs one round trip.
const selectFullPost = `SELECT
	p.id, p.author_id, p.title, p.text, p.pub_date, p.is_published, p.image_url, p.location_id, p.category_id, p.created_at,
	u.username, u.first_name, u.last_name, u.avatar_url,
	c.id, c.title, c.description, c.slug, c.is_published, c.created_at,
	l.id, l.name, l.is_published, l.created_at,
	(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id AND ` + policy.VisibleCommentSQL + `)
	FROM posts p
	JOIN users u ON p.author_id = u.id
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN locations l ON p.location_id = l.id`

const postOrder = " ORDER BY p.pub_date DESC, p.id DESC"

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) repository.Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posts(author_id, title, text, pub_date, is_published, image_url, location_id, category_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		post.AuthorID,
		post.Title,
		post.Text,
		post.PubDate,
		post.IsPublished,
		post.ImageURL,
		post.LocationID,
		post.CategoryID,
	).Scan(&post.ID, &post.CreatedAt); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	post, err := scanFullPost(r.db.QueryRow(ctx, selectFullPost+" WHERE p.id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}

	return post, nil
}

func (r *postRepo) Count(ctx context.Context, filter repository.PostFilter) (int, error) {
	where, args := postWhere(filter)

	var count int
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM posts p LEFT JOIN categories c ON p.category_id = c.id"+where,
		args...,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepo) Find(ctx context.Context, filter repository.PostFilter, limit int, offset int) ([]*model.FullPost, error) {
	query, args := findPostsQuery(filter, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*model.FullPost, 0, limit)
	for rows.Next() {
		post, err := scanFullPost(rows)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Update(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := r.db.QueryRow(
		ctx,
		`UPDATE posts
		SET title = $1, text = $2, pub_date = $3, is_published = $4, image_url = $5, location_id = $6, category_id = $7
		WHERE id = $8 AND author_id = $9
		RETURNING created_at`,
		post.Title,
		post.Text,
		post.PubDate,
		post.IsPublished,
		post.ImageURL,
		post.LocationID,
		post.CategoryID,
		post.ID,
		post.AuthorID,
	).Scan(&post.CreatedAt); err != nil {
		return nil, notFound(err)
	}

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND author_id = $2", id, authorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func postWhere(filter repository.PostFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	placeholder := func(value interface{}) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Scope.PublicOnly {
		conds = append(conds, policy.PublicPostSQL(placeholder(filter.Scope.Now)))
	}
	if filter.AuthorID != nil {
		conds = append(conds, "p.author_id = "+placeholder(*filter.AuthorID))
	}
	if filter.CategorySlug != "" {
		conds = append(conds, "c.slug = "+placeholder(filter.CategorySlug))
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// findPostsQuery appends LIMIT and OFFSET placeholders after the filter's own.
func findPostsQuery(filter repository.PostFilter, limit int, offset int) (string, []interface{}) {
	where, args := postWhere(filter)
	args = append(args, limit, offset)

	return selectFullPost + where + postOrder +
		" LIMIT $" + strconv.Itoa(len(args)-1) +
		" OFFSET $" + strconv.Itoa(len(args)), args
}

func scanFullPost(row pgx.Row) (*model.FullPost, error) {
	var (
		post       model.FullPost
		categoryID *int64
		catTitle   *string
		catDesc    *string
		catSlug    *string
		catPub     *bool
		catCreated *time.Time
		locationID *int64
		locName    *string
		locPub     *bool
		locCreated *time.Time
	)
	if err := row.Scan(
		&post.Post.ID,
		&post.Post.AuthorID,
		&post.Post.Title,
		&post.Post.Text,
		&post.Post.PubDate,
		&post.Post.IsPublished,
		&post.Post.ImageURL,
		&post.Post.LocationID,
		&post.Post.CategoryID,
		&post.Post.CreatedAt,
		&post.Author.Username,
		&post.Author.FirstName,
		&post.Author.LastName,
		&post.Author.AvatarURL,
		&categoryID,
		&catTitle,
		&catDesc,
		&catSlug,
		&catPub,
		&catCreated,
		&locationID,
		&locName,
		&locPub,
		&locCreated,
		&post.CommentCount,
	); err != nil {
		return nil, err
	}

	if categoryID != nil {
		post.Category = &model.Category{
			ID:          *categoryID,
			Title:       *catTitle,
			Description: *catDesc,
			Slug:        *catSlug,
			IsPublished: *catPub,
			CreatedAt:   *catCreated,
		}
	}

	if locationID != nil {
		post.Location = &model.Location{
			ID:          *locationID,
			Name:        *locName,
			IsPublished: *locPub,
			CreatedAt:   *locCreated,
		}
	}

	return &post, nil
}
