package service

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/paginate"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lister runs every paginated post listing: feed, category and profile.
type lister struct {
	logger   *zap.Logger
	repo     *repository.Repository
	pageSize int
	now      func() time.Time
}

func newLister(logger *zap.Logger, repo *repository.Repository, opts Options) *lister {
	return &lister{
		logger:   logger,
		repo:     repo,
		pageSize: opts.PageSize,
		now:      opts.Now,
	}
}

func (l *lister) scope(viewer *model.Viewer, owner *uuid.UUID) policy.PostScope {
	return policy.ScopeFor(viewer, owner, l.now())
}

func (l *lister) page(ctx context.Context, filter repository.PostFilter, page string) (*dto.PostPage, error) {
	total, err := l.repo.Post.Count(ctx, filter)
	if err != nil {
		l.logger.Sugar().Errorf("failed to count posts: %s", err.Error())
		return nil, ErrInternal
	}

	window := paginate.NewWindow(total, l.pageSize, page)

	posts, err := l.repo.Post.Find(ctx, filter, window.Limit, window.Offset)
	if err != nil {
		l.logger.Sugar().Errorf("failed to find posts(page %d): %s", window.Number, err.Error())
		return nil, ErrInternal
	}

	result := paginate.FromWindow(window, posts)
	return &result, nil
}
