package handlers

import (
	"net/http"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/services"

	"github.com/gin-gonic/gin"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
}

func NewStandingsHandler(standingsService *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// GetStandings godoc
// @Summary      Current standings
// @Description  Total fantasy points per athlete, highest first
// @Tags         standings
// @Produce      json
// @Success      200 {array} services.StandingsEntry
// @Failure      500 {object} ErrorResponse
// @Router       /standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	entries, err := h.standingsService.Standings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to compute standings"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
