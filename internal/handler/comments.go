package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input dto.CommentRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), viewer, postID, input)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdComment)
}

func (h *Handler) commentsEdit(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	commentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input dto.CommentRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	comment, err := h.services.Comment.Edit(c.Request.Context(), viewer, commentID, input)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	commentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), viewer, commentID); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
