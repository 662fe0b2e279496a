package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/policy"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) loggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	h.logger.Info(
		"request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	)
}

func (h *Handler) viewerFromHeader(c *gin.Context) (*model.Viewer, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errNotAuthorized
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		return nil, errNotAuthorized
	}

	claims, err := utils.DecodeJWT(accessToken, h.cfg.AccessSecret)
	if err != nil {
		return nil, errNotAuthorized
	}

	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		return nil, errNotAuthorized
	}

	return h.services.Identity.Viewer(c.Request.Context(), userID)
}

// authMiddleware sends anonymous visitors to the login page.
func (h *Handler) authMiddleware(c *gin.Context) {
	viewer, err := h.viewerFromHeader(c)
	if err != nil {
		if errors.Is(err, service.ErrInternal) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
			return
		}
		h.redirectToLogin(c)
		return
	}

	c.Set(viewerKey, viewer)

	c.Next()
}

// optionalAuthMiddleware attaches the viewer when the request carries a valid token.
func (h *Handler) optionalAuthMiddleware(c *gin.Context) {
	viewer, err := h.viewerFromHeader(c)
	if err != nil {
		c.Next()
		return
	}

	c.Set(viewerKey, viewer)

	c.Next()
}

// ownerResolver returns the author of the resource addressed by the request.
// It writes the response itself and returns false when it cannot.
type ownerResolver func(c *gin.Context) (uuid.UUID, bool)

// ownerOnly is the single ownership guard in front of every mutating route.
// Must run after authMiddleware.
func (h *Handler) ownerOnly(owner ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := owner(c)
		if !ok {
			return
		}

		if !policy.CanMutate(h.getViewerFromRequest(c), ownerID) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewBasicResponse(false, service.ErrForbidden.Error()))
			return
		}

		c.Next()
	}
}

func (h *Handler) postOwner(c *gin.Context) (uuid.UUID, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return uuid.Nil, false
	}

	ownerID, err := h.services.Post.Owner(c.Request.Context(), h.getViewerFromRequest(c), id)
	if err != nil {
		h.abortWithError(c, err)
		return uuid.Nil, false
	}

	return ownerID, true
}

func (h *Handler) commentOwner(c *gin.Context) (uuid.UUID, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return uuid.Nil, false
	}

	ownerID, err := h.services.Comment.Owner(c.Request.Context(), h.getViewerFromRequest(c), id)
	if err != nil {
		h.abortWithError(c, err)
		return uuid.Nil, false
	}

	return ownerID, true
}

func (h *Handler) profileOwner(c *gin.Context) (uuid.UUID, bool) {
	ownerID, err := h.services.Profile.Owner(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.abortWithError(c, err)
		return uuid.Nil, false
	}

	return ownerID, true
}
