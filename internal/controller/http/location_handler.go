package http

import (
	"net/http"

	"festmap/internal/usecase"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
	logger          *logger.Logger
	production      bool
}

func NewLocationHandler(locationUseCase usecase.LocationUseCase, logger *logger.Logger, production bool) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
		logger:          logger,
		production:      production,
	}
}

func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationUseCase.ListLocations()
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  locations,
		"count": len(locations),
	})
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	location, err := h.locationUseCase.GetLocation(id)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": location})
}

func (h *LocationHandler) GetLocationPosts(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	limit, offset := paginationParams(c, 20)

	posts, err := h.locationUseCase.PostsAt(id, limit, offset)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, paginated(posts, len(posts), limit, offset))
}
