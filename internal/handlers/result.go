package handlers

import (
	"errors"
	"net/http"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

type ResultEntryRequest struct {
	AthleteID uint   `json:"athleteId" binding:"required" example:"1"`
	Place     int    `json:"place" binding:"required" example:"1"`
	Time      string `json:"time" example:"1:12.45"`
}

type SubmitResultsRequest struct {
	RaceID  uint                 `json:"raceId" binding:"required" example:"1"`
	Results []ResultEntryRequest `json:"results" binding:"required,min=1,dive"`
}

// SubmitResults godoc
// @Summary      Submit a race's results
// @Description  Scores every entry and stores results with their fantasy scores in one transaction
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        request body SubmitResultsRequest true "Results batch"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /results [post]
func (h *ResultHandler) SubmitResults(c *gin.Context) {
	var req SubmitResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entries := make([]services.ResultEntry, 0, len(req.Results))
	for _, r := range req.Results {
		entries = append(entries, services.ResultEntry{
			AthleteID: r.AthleteID,
			Place:     r.Place,
			Time:      r.Time,
		})
	}

	if err := h.resultService.IngestBatch(req.RaceID, entries); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateResult):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrRaceNotFound),
			errors.Is(err, services.ErrAthleteNotFound),
			errors.Is(err, services.ErrEmptyBatch),
			errors.Is(err, services.ErrInvalidPlace):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store results"})
		}
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "results stored"})
}
