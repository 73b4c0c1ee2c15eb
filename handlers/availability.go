package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomgrid/models"
	"roomgrid/services"
	"roomgrid/utils"
)

// AvailabilityHandler exposes the two grid endpoints.
type AvailabilityHandler struct {
	Service services.AvailabilityService
}

func NewAvailabilityHandler(svc services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// EliteGridHandler returns the exclusive-category grid for ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) EliteGridHandler(c *gin.Context) {
	date, clubID, ok := gridParams(c)
	if !ok {
		return
	}

	grid, err := h.Service.GetEliteGrid(c.Request.Context(), clubID, date)
	if err != nil {
		respondGridError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// ComfortGridHandler returns the pooled-category grid for ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) ComfortGridHandler(c *gin.Context) {
	date, clubID, ok := gridParams(c)
	if !ok {
		return
	}

	grid, err := h.Service.GetComfortGrid(c.Request.Context(), clubID, date)
	if err != nil {
		respondGridError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// gridParams pulls the shared query parameters. The date itself is validated
// by the engine; only presence is checked here.
func gridParams(c *gin.Context) (date string, clubID int, ok bool) {
	date = c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required date query parameter"})
		return "", 0, false
	}
	if raw := c.Query("club_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club_id query parameter"})
			return "", 0, false
		}
		clubID = id
	}
	return date, clubID, true
}

// respondGridError maps the engine's error taxonomy onto HTTP statuses:
// 400 for bad input, 502 for upstream failures, 500 for reference-data bugs.
func respondGridError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var invalidDate *models.InvalidDateError
	var upstreamErr *models.UpstreamError
	var mappingErr *models.MissingServiceMappingError
	var configErr *models.ConfigError

	switch {
	case errors.As(err, &invalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})

	case errors.As(err, &upstreamErr):
		logger.Error("Upstream occupancy fetch failed",
			zap.Int("serviceID", upstreamErr.ServiceID),
			zap.Int("roomID", upstreamErr.RoomID),
			zap.Int("status", upstreamErr.Status),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream scheduling system unavailable", "message": err.Error()})

	case errors.As(err, &mappingErr), errors.As(err, &configErr):
		logger.Error("Venue configuration rejected", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Venue configuration error", "message": err.Error()})

	default:
		logger.Error("Grid resolution failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve availability", "message": err.Error()})
	}
}
