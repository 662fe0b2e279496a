package service

import "errors"

var (
	ErrInternal                    = errors.New("internal server error")
	ErrNotFound                    = errors.New("not found")
	ErrForbidden                   = errors.New("you are not the author")
	ErrNotAuthenticated            = errors.New("user is not authenticated")
	ErrInvalidCategory             = errors.New("category does not exist")
	ErrInvalidLocation             = errors.New("location does not exist")
	ErrFileMustBeImage             = errors.New("file must be an image")
	ErrFileMustHaveAValidExtension = errors.New("file must have a valid extension")
	ErrFileTooLarge                = errors.New("file must not exceed 10MB")
	ErrFailedToUploadImage         = errors.New("failed to upload image")
)

// IsValidation reports whether err is caused by malformed client input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidLocation) ||
		errors.Is(err, ErrFileMustBeImage) ||
		errors.Is(err, ErrFileMustHaveAValidExtension) ||
		errors.Is(err, ErrFileTooLarge)
}
