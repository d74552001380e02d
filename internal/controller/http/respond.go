package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"festmap/internal/entity"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps the usecase error taxonomy onto HTTP statuses. Storage
// failures only expose their underlying message outside production.
func respondError(c *gin.Context, log *logger.Logger, production bool, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("Storage failure: %v", err)
		if production {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", entity.ErrInvalidArgument, name)
	}
	return uint(v), nil
}

func paginationParams(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	offset = 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	return limit, offset
}

// paginated wraps a result page. hasMore is an approximation: a page that came
// back full is assumed to have more rows behind it.
func paginated(data interface{}, count, limit, offset int) gin.H {
	return gin.H{
		"data":  data,
		"count": count,
		"pagination": gin.H{
			"limit":   limit,
			"offset":  offset,
			"hasMore": count == limit,
		},
	}
}
