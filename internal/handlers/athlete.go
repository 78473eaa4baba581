package handlers

import (
	"net/http"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/services"

	"github.com/gin-gonic/gin"
)

type AthleteHandler struct {
	athleteService *services.AthleteService
}

func NewAthleteHandler(athleteService *services.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

type CreateAthleteRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"Jane Doe"`
	Country string `json:"country" binding:"required,max=100" example:"USA"`
}

// ListAthletes godoc
// @Summary      List athletes
// @Tags         athletes
// @Produce      json
// @Success      200 {array} Athlete
// @Failure      500 {object} ErrorResponse
// @Router       /athletes [get]
func (h *AthleteHandler) ListAthletes(c *gin.Context) {
	athletes, err := h.athleteService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list athletes"})
		return
	}
	c.JSON(http.StatusOK, athletes)
}

// CreateAthlete godoc
// @Summary      Register an athlete
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        request body CreateAthleteRequest true "Athlete data"
// @Success      201 {object} Athlete
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /athletes [post]
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	athlete, err := h.athleteService.Create(req.Name, req.Country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create athlete"})
		return
	}

	c.JSON(http.StatusCreated, athlete)
}
