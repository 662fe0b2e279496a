package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultPageSize = 10

type Post interface {
	Create(ctx context.Context, viewer *model.Viewer, req dto.PostRequest) (*model.Post, error)
	FindByID(ctx context.Context, viewer *model.Viewer, id int64) (*dto.GetPost, error)
	List(ctx context.Context, viewer *model.Viewer, page string) (*dto.PostPage, error)
	// Owner resolves the author of a post the viewer can see.
	Owner(ctx context.Context, viewer *model.Viewer, id int64) (uuid.UUID, error)
	Edit(ctx context.Context, viewer *model.Viewer, id int64, req dto.PostRequest) (*model.Post, error)
	Delete(ctx context.Context, viewer *model.Viewer, id int64) error
}

type Category interface {
	FindPosts(ctx context.Context, viewer *model.Viewer, slug string, page string) (*dto.CategoryPosts, error)
}

type Comment interface {
	Create(ctx context.Context, viewer *model.Viewer, postID int64, req dto.CommentRequest) (*model.Comment, error)
	Owner(ctx context.Context, viewer *model.Viewer, id int64) (uuid.UUID, error)
	Edit(ctx context.Context, viewer *model.Viewer, id int64, req dto.CommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, viewer *model.Viewer, id int64) error
}

type Profile interface {
	Find(ctx context.Context, viewer *model.Viewer, username string, page string) (*dto.Profile, error)
	Owner(ctx context.Context, username string) (uuid.UUID, error)
	Edit(ctx context.Context, viewer *model.Viewer, username string, req dto.ProfileRequest) (*model.User, error)
}

// Identity turns an authenticated user id into the request's viewer.
type Identity interface {
	Viewer(ctx context.Context, id uuid.UUID) (*model.Viewer, error)
}

type Image interface {
	Upload(ctx context.Context, viewer *model.Viewer, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Health interface {
	Ping(ctx context.Context) error
}

type Options struct {
	PageSize int
	Now      func() time.Time
}

type Service struct {
	Post
	Category
	Comment
	Profile
	Identity
	Image
	Health
}

func New(logger *zap.Logger, repo *repository.Repository, images storage.ImageStore, opts Options) *Service {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	l := newLister(logger, repo, opts)

	return &Service{
		Post:     newPostService(logger, repo, l),
		Category: newCategoryService(logger, repo, l),
		Comment:  newCommentService(logger, repo, opts.Now),
		Profile:  newProfileService(logger, repo, l),
		Identity: newIdentityService(logger, repo),
		Image:    newImageService(logger, images),
		Health:   newHealthService(repo),
	}
}
