package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidID     = errors.New("invalid ID")
	errImageRequired = errors.New("image file is required")
)

// abortWithError writes the response for a service error. It aborts the
// chain so the guard middleware can use it as well.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		h.redirectToLogin(c)
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewBasicResponse(false, err.Error()))
	case service.IsValidation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewBasicResponse(false, service.ErrInternal.Error()))
	}
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, h.cfg.LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

// idParam parses a numeric path parameter. Malformed ids cannot match any row,
// so they answer 404 like an unknown route.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewBasicResponse(false, errInvalidID.Error()))
		return 0, false
	}

	return id, true
}
