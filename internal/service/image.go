package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	imageUploadPath = "post"
	maxImageSize    = 10 << 20
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type imageService struct {
	logger *zap.Logger
	store  storage.ImageStore
}

func newImageService(logger *zap.Logger, store storage.ImageStore) Image {
	return &imageService{
		logger: logger,
		store:  store,
	}
}

func (s *imageService) Upload(ctx context.Context, viewer *model.Viewer, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	if viewer == nil {
		return "", ErrNotAuthenticated
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", ErrFileMustHaveAValidExtension
	}

	if fileHeader.Size > maxImageSize {
		return "", ErrFileTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrFileMustBeImage
	}

	if s.store == nil {
		s.logger.Error("image upload requested but no image store is configured")
		return "", ErrFailedToUploadImage
	}

	key := imageUploadPath + "/" + uuid.NewString() + ext

	url, err := s.store.Put(ctx, key, file, fileHeader.Size, contentType)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload user(%s) image(%s): %s", viewer.ID.String(), key, err.Error())
		return "", ErrFailedToUploadImage
	}

	return url, nil
}
