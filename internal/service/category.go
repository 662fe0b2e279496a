package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"go.uber.org/zap"
)

type categoryService struct {
	logger *zap.Logger
	repo   *repository.Repository
	lister *lister
}

func newCategoryService(logger *zap.Logger, repo *repository.Repository, lister *lister) Category {
	return &categoryService{
		logger: logger,
		repo:   repo,
		lister: lister,
	}
}

func (s *categoryService) FindPosts(ctx context.Context, viewer *model.Viewer, slug string, page string) (*dto.CategoryPosts, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find category(%s): %s", slug, err.Error())
		return nil, ErrInternal
	}

	if !policy.IsCategoryVisible(category) {
		return nil, ErrNotFound
	}

	posts, err := s.lister.page(ctx, repository.PostFilter{
		Scope:        s.lister.scope(viewer, nil),
		CategorySlug: slug,
	}, page)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryPosts{
		Category: *category,
		Posts:    *posts,
	}, nil
}
