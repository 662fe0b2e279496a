package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const viewerKey = "viewer"

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	cfg      config.AppConfig
}

func New(services *service.Service, logger *zap.Logger, cfg config.AppConfig) *Handler {
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/auth/login"
	}
	return &Handler{
		services: services,
		logger:   logger,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	r.Use(gin.Recovery(), h.loggerMiddleware)

	if h.cfg.ClientOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{h.cfg.ClientOrigin},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", h.healthz)

	r.GET("/", h.optionalAuthMiddleware, h.postsList)
	r.POST("/create_post", h.authMiddleware, h.postsCreate)
	r.POST("/upload_image", h.authMiddleware, h.imagesUpload)
	r.GET("/category/:slug", h.optionalAuthMiddleware, h.categoryPosts)

	post := r.Group("/posts/:id")
	{
		post.GET("", h.optionalAuthMiddleware, h.postsGetByID)
		post.POST("/edit", h.authMiddleware, h.ownerOnly(h.postOwner), h.postsEdit)
		post.POST("/delete", h.authMiddleware, h.ownerOnly(h.postOwner), h.postsDelete)
		post.POST("/comment", h.authMiddleware, h.commentsCreate)
	}

	comment := r.Group("/comments/:id")
	{
		comment.POST("/edit", h.authMiddleware, h.ownerOnly(h.commentOwner), h.commentsEdit)
		comment.POST("/delete", h.authMiddleware, h.ownerOnly(h.commentOwner), h.commentsDelete)
	}

	profile := r.Group("/profile/:username")
	{
		profile.GET("", h.optionalAuthMiddleware, h.profileGet)
		profile.POST("/edit", h.authMiddleware, h.ownerOnly(h.profileOwner), h.profileEdit)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, service.ErrNotFound.Error()))
	})

	return r
}

func (h *Handler) healthz(c *gin.Context) {
	if err := h.services.Health.Ping(c.Request.Context()); err != nil {
		h.logger.Sugar().Errorf("health check failed: %s", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.NewBasicResponse(false, "store unavailable"))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

// getViewerFromRequest returns nil for anonymous requests.
func (h *Handler) getViewerFromRequest(c *gin.Context) *model.Viewer {
	viewerReq, _ := c.Get(viewerKey)

	viewer, ok := viewerReq.(*model.Viewer)
	if !ok {
		return nil
	}

	return viewer
}
