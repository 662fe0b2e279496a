package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) repository.Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(post_id, author_id, text, is_published) VALUES($1, $2, $3, $4) RETURNING id, created_at",
		comment.PostID,
		comment.AuthorID,
		comment.Text,
		comment.IsPublished,
	).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindVisibleByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		`SELECT cm.id, cm.post_id, cm.author_id, cm.text, cm.is_published, cm.created_at
		FROM comments cm
		WHERE cm.id = $1 AND `+policy.VisibleCommentSQL,
		id,
	).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Text,
		&comment.IsPublished,
		&comment.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	return &comment, nil
}

func (r *commentRepo) FindByPost(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		cm.id, cm.post_id, cm.author_id, cm.text, cm.is_published, cm.created_at, u.username, u.first_name, u.last_name, u.avatar_url
		FROM comments cm
		JOIN users u ON cm.author_id = u.id
		WHERE cm.post_id = $1 AND `+policy.VisibleCommentSQL+`
		ORDER BY cm.created_at ASC, cm.id ASC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*model.FullComment{}
	for rows.Next() {
		var comment model.FullComment
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Text,
			&comment.Comment.IsPublished,
			&comment.Comment.CreatedAt,
			&comment.Author.Username,
			&comment.Author.FirstName,
			&comment.Author.LastName,
			&comment.Author.AvatarURL,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) Update(ctx context.Context, id int64, authorID uuid.UUID, text string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		`UPDATE comments cm SET text = $1
		WHERE cm.id = $2 AND cm.author_id = $3 AND `+policy.VisibleCommentSQL+`
		RETURNING cm.id, cm.post_id, cm.author_id, cm.text, cm.is_published, cm.created_at`,
		text,
		id,
		authorID,
	).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Text,
		&comment.IsPublished,
		&comment.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	return &comment, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM comments cm WHERE cm.id = $1 AND cm.author_id = $2 AND "+policy.VisibleCommentSQL, id, authorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
