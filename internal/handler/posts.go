package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsList(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	posts, err := h.services.Post.List(c.Request.Context(), viewer, c.Query("page"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), viewer, postID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsCreate(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	var input dto.PostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), viewer, input)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdPost)
}

func (h *Handler) postsEdit(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input dto.PostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Edit(c.Request.Context(), viewer, postID, input)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updatedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), viewer, postID); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) categoryPosts(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	category, err := h.services.Category.FindPosts(c.Request.Context(), viewer, c.Param("slug"), c.Query("page"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) imagesUpload(c *gin.Context) {
	viewer := h.getViewerFromRequest(c)

	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errImageRequired.Error()))
		return
	}
	defer file.Close()

	url, err := h.services.Image.Upload(c.Request.Context(), viewer, file, fileHeader)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadedImage{URL: url})
}
