package http

import (
	"net/http"

	"festmap/internal/usecase"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
	production     bool
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger, production bool) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
		production:     production,
	}
}

type createCommentRequest struct {
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

// ListByPost returns a post's comments oldest first. Comment listings default
// to a larger page than post listings.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := parseUintParam(c, "postId")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	limit, offset := paginationParams(c, 50)

	comments, err := h.commentUseCase.ListByPost(postID, limit, offset)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, paginated(comments, len(comments), limit, offset))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, err := parseUintParam(c, "postId")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(postID, req.Content, req.AuthorName)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": comment})
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	comment, err := h.commentUseCase.GetComment(id)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	postID, err := h.commentUseCase.DeleteComment(id)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Comment deleted",
		"deleted_comment_id": id,
		"post_id":            postID,
	})
}

func (h *CommentHandler) CountByPost(c *gin.Context) {
	postID, err := parseUintParam(c, "postId")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	count, err := h.commentUseCase.CountByPost(postID)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post_id":       postID,
		"comment_count": count,
	})
}

func (h *CommentHandler) ListByAuthor(c *gin.Context) {
	authorName := c.Param("authorName")
	limit, offset := paginationParams(c, 20)

	comments, err := h.commentUseCase.ListByAuthor(authorName, limit, offset)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, paginated(comments, len(comments), limit, offset))
}
