package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
	lister *lister
}

func newPostService(logger *zap.Logger, repo *repository.Repository, lister *lister) Post {
	return &postService{
		logger: logger,
		repo:   repo,
		lister: lister,
	}
}

func (s *postService) Create(ctx context.Context, viewer *model.Viewer, req dto.PostRequest) (*model.Post, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	post := postFromRequest(req)
	post.AuthorID = viewer.ID

	createdPost, err := s.repo.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", viewer.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, viewer *model.Viewer, id int64) (*dto.GetPost, error) {
	post, err := s.repo.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	// Hidden posts answer like missing ones so their existence does not leak.
	if !policy.IsVisibleTo(post, viewer, s.lister.now()) {
		return nil, ErrNotFound
	}

	comments, err := s.repo.Comment.FindByPost(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", id, err.Error())
		return nil, ErrInternal
	}

	return &dto.GetPost{
		Post:     *post,
		Comments: comments,
	}, nil
}

func (s *postService) List(ctx context.Context, viewer *model.Viewer, page string) (*dto.PostPage, error) {
	return s.lister.page(ctx, repository.PostFilter{Scope: s.lister.scope(viewer, nil)}, page)
}

func (s *postService) Owner(ctx context.Context, viewer *model.Viewer, id int64) (uuid.UUID, error) {
	post, err := s.repo.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d) owner: %s", id, err.Error())
		return uuid.Nil, ErrInternal
	}

	if !policy.IsVisibleTo(post, viewer, s.lister.now()) {
		return uuid.Nil, ErrNotFound
	}

	return post.Post.AuthorID, nil
}

func (s *postService) Edit(ctx context.Context, viewer *model.Viewer, id int64, req dto.PostRequest) (*model.Post, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	post := postFromRequest(req)
	post.ID = id
	post.AuthorID = viewer.ID

	updatedPost, err := s.repo.Post.Update(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to update post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, viewer *model.Viewer, id int64) error {
	if viewer == nil {
		return ErrNotAuthenticated
	}

	if err := s.repo.Post.Delete(ctx, id, viewer.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) checkReferences(ctx context.Context, req dto.PostRequest) error {
	if req.CategoryID != nil {
		if _, err := s.repo.Category.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrInvalidCategory
			}
			s.logger.Sugar().Errorf("failed to find category(%d): %s", *req.CategoryID, err.Error())
			return ErrInternal
		}
	}

	if req.LocationID != nil {
		if _, err := s.repo.Location.FindByID(ctx, *req.LocationID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrInvalidLocation
			}
			s.logger.Sugar().Errorf("failed to find location(%d): %s", *req.LocationID, err.Error())
			return ErrInternal
		}
	}

	return nil
}

func postFromRequest(req dto.PostRequest) model.Post {
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	return model.Post{
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		IsPublished: isPublished,
		ImageURL:    req.ImageURL,
		LocationID:  req.LocationID,
		CategoryID:  req.CategoryID,
	}
}
