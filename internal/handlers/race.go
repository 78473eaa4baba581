package handlers

import (
	"net/http"
	"time"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/services"

	"github.com/gin-gonic/gin"
)

type RaceHandler struct {
	raceService *services.RaceService
}

func NewRaceHandler(raceService *services.RaceService) *RaceHandler {
	return &RaceHandler{raceService: raceService}
}

type CreateRaceRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"World Cup Finals"`
	Date string `json:"date" binding:"required" example:"2026-02-14"`
}

// ListRaces godoc
// @Summary      List races
// @Description  All races, most recent first
// @Tags         races
// @Produce      json
// @Success      200 {array} Race
// @Failure      500 {object} ErrorResponse
// @Router       /races [get]
func (h *RaceHandler) ListRaces(c *gin.Context) {
	races, err := h.raceService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list races"})
		return
	}
	c.JSON(http.StatusOK, races)
}

// CreateRace godoc
// @Summary      Create a race
// @Tags         races
// @Accept       json
// @Produce      json
// @Param        request body CreateRaceRequest true "Race data (date as YYYY-MM-DD)"
// @Success      201 {object} Race
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /races [post]
func (h *RaceHandler) CreateRace(c *gin.Context) {
	var req CreateRaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be in YYYY-MM-DD format"})
		return
	}

	race, err := h.raceService.Create(req.Name, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create race"})
		return
	}

	c.JSON(http.StatusCreated, race)
}
