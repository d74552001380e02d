package http

import (
	"net/http"
	"strconv"

	"festmap/internal/usecase"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
	production  bool
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger, production bool) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
		production:  production,
	}
}

type createPostRequest struct {
	LocationID uint   `json:"location_id"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
	ImageURL   string `json:"image_url"`
}

// ListPosts returns posts newest first, optionally filtered by location_id.
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := paginationParams(c, 20)

	var locationID uint
	if locStr := c.Query("location_id"); locStr != "" {
		if loc, err := strconv.ParseUint(locStr, 10, 32); err == nil {
			locationID = uint(loc)
		}
	}

	posts, err := h.postUseCase.ListPosts(limit, offset, locationID)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, paginated(posts, len(posts), limit, offset))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	post, err := h.postUseCase.GetPost(id)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// CreatePost godoc
// @Summary      Create a journal post
// @Description  Creates a post pinned to an existing location. The image URL is an opaque reference; uploads are handled elsewhere.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body body createPostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(req.LocationID, req.Content, req.AuthorName, req.ImageURL)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": post})
}

// DeletePost removes the post and, in the same transaction, every comment and
// like referencing it.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	if err := h.postUseCase.DeletePost(id); err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
