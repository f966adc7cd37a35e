package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soulmatch/soulmatch-backend/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// GetMatches returns the candidates matching the user's preference
// @Summary Discover matches
// @Description Static catalog filtered by the current user's preference
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Candidate
// @Failure 500 {object} ErrorResponse
// @Router /discover/matches [get]
func (h *DiscoveryHandler) GetMatches(c *gin.Context) {
	matches, err := h.discoveryUseCase.Matches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}
