package http

import (
	"fmt"
	"net/http"

	"festmap/internal/entity"
	"festmap/internal/usecase"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
	production  bool
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger, production bool) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
		production:  production,
	}
}

type likeRequest struct {
	UserIdentifier string `json:"user_identifier"`
}

// GetPostLikes godoc
// @Summary      Get like state for a post
// @Description  Returns the like count and the identifiers that liked the post, in like order
// @Tags         likes
// @Produce      json
// @Param        postId path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /likes/posts/{postId} [get]
func (h *LikeHandler) GetPostLikes(c *gin.Context) {
	postID, err := parseUintParam(c, "postId")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	summary, err := h.likeUseCase.GetLikeCount(postID)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post_id":     summary.PostID,
		"like_count":  summary.LikeCount,
		"liked_users": summary.LikedUsers,
	})
}

// AddLike godoc
// @Summary      Like a post
// @Description  Records a like for (post, user identifier). Liking twice is a conflict, not a no-op.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        postId path int true "Post ID"
// @Param        body body likeRequest true "Anonymous user identifier"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /likes/posts/{postId} [post]
func (h *LikeHandler) AddLike(c *gin.Context) {
	postID, err := parseUintParam(c, "postId")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, h.production,
			fmt.Errorf("%w: user identifier is required", entity.ErrInvalidArgument))
		return
	}

	count, err := h.likeUseCase.AddLike(postID, req.UserIdentifier)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"post_id":         postID,
		"like_count":      count,
		"user_identifier": req.UserIdentifier,
	})
}

// RemoveLike godoc
// @Summary      Unlike a post
// @Description  Deletes the like for (post, user identifier) and returns the refreshed count
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        postId path int true "Post ID"
// @Param        body body likeRequest true "Anonymous user identifier"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /likes/posts/{postId} [delete]
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	postID, err := parseUintParam(c, "postId")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, h.production,
			fmt.Errorf("%w: user identifier is required", entity.ErrInvalidArgument))
		return
	}

	count, err := h.likeUseCase.RemoveLike(postID, req.UserIdentifier)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post_id":    postID,
		"like_count": count,
	})
}

// GetLikedPosts godoc
// @Summary      Posts liked by a user
// @Description  Paginated list of posts the identifier has liked, newest like first
// @Tags         likes
// @Produce      json
// @Param        userIdentifier path string true "Anonymous user identifier"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /likes/user/{userIdentifier} [get]
func (h *LikeHandler) GetLikedPosts(c *gin.Context) {
	userIdentifier := c.Param("userIdentifier")
	limit, offset := paginationParams(c, 20)

	posts, err := h.likeUseCase.GetLikedPosts(userIdentifier, limit, offset)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, paginated(posts, len(posts), limit, offset))
}
