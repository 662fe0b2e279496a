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

type profileService struct {
	logger *zap.Logger
	repo   *repository.Repository
	lister *lister
}

func newProfileService(logger *zap.Logger, repo *repository.Repository, lister *lister) Profile {
	return &profileService{
		logger: logger,
		repo:   repo,
		lister: lister,
	}
}

func (s *profileService) findUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *profileService) Find(ctx context.Context, viewer *model.Viewer, username string, page string) (*dto.Profile, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.lister.page(ctx, repository.PostFilter{
		Scope:    s.lister.scope(viewer, &user.ID),
		AuthorID: &user.ID,
	}, page)
	if err != nil {
		return nil, err
	}

	return &dto.Profile{
		Profile: *user,
		IsOwner: viewer.Is(user.ID),
		Posts:   *posts,
	}, nil
}

func (s *profileService) Owner(ctx context.Context, username string) (uuid.UUID, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return uuid.Nil, err
	}

	return user.ID, nil
}

func (s *profileService) Edit(ctx context.Context, viewer *model.Viewer, username string, req dto.ProfileRequest) (*model.User, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}

	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(viewer, user.ID) {
		return nil, ErrForbidden
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Bio = req.Bio
	user.AvatarURL = req.AvatarURL

	updatedUser, err := s.repo.User.Update(ctx, *user)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to update user(%s) profile: %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return updatedUser, nil
}
