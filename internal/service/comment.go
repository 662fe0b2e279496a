package service

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
	now    func() time.Time
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, now func() time.Time) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
		now:    now,
	}
}

func (s *commentService) Create(ctx context.Context, viewer *model.Viewer, postID int64, req dto.CommentRequest) (*model.Comment, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}

	post, err := s.repo.Post.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d) for comment: %s", postID, err.Error())
		return nil, ErrInternal
	}

	if !policy.IsVisibleTo(post, viewer, s.now()) {
		return nil, ErrNotFound
	}

	createdComment, err := s.repo.Comment.Create(ctx, model.Comment{
		PostID:      postID,
		AuthorID:    viewer.ID,
		Text:        req.Text,
		IsPublished: true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", viewer.ID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) Owner(ctx context.Context, viewer *model.Viewer, id int64) (uuid.UUID, error) {
	comment, err := s.repo.Comment.FindVisibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find comment(%d) owner: %s", id, err.Error())
		return uuid.Nil, ErrInternal
	}

	// A comment under a hidden post is as hidden as the post.
	post, err := s.repo.Post.FindByID(ctx, comment.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find comment(%d) post(%d): %s", id, comment.PostID, err.Error())
		return uuid.Nil, ErrInternal
	}
	if !policy.IsVisibleTo(post, viewer, s.now()) {
		return uuid.Nil, ErrNotFound
	}

	return comment.AuthorID, nil
}

func (s *commentService) Edit(ctx context.Context, viewer *model.Viewer, id int64, req dto.CommentRequest) (*model.Comment, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}

	comment, err := s.repo.Comment.Update(ctx, id, viewer.ID, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to update comment(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, viewer *model.Viewer, id int64) error {
	if viewer == nil {
		return ErrNotAuthenticated
	}

	if err := s.repo.Comment.Delete(ctx, id, viewer.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}
