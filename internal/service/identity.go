package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type identityService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newIdentityService(logger *zap.Logger, repo *repository.Repository) Identity {
	return &identityService{
		logger: logger,
		repo:   repo,
	}
}

func (s *identityService) Viewer(ctx context.Context, id uuid.UUID) (*model.Viewer, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		s.logger.Sugar().Errorf("failed to find user(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return &model.Viewer{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

type healthService struct {
	repo *repository.Repository
}

func newHealthService(repo *repository.Repository) Health {
	return &healthService{
		repo: repo,
	}
}

func (s *healthService) Ping(ctx context.Context) error {
	return s.repo.Pinger.Ping(ctx)
}
