package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) profileGet(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	profile, err := h.services.Profile.Find(c.Request.Context(), viewer, c.Param("username"), c.Query("page"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) profileEdit(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	var input dto.ProfileRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	user, err := h.services.Profile.Edit(c.Request.Context(), viewer, c.Param("username"), input)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
