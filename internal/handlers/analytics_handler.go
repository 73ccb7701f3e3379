package handlers

import (
	"net/http"
	"time"

	"github.com/BackspaceAditya/JustEat/internal/middleware"
	"github.com/BackspaceAditya/JustEat/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// MostlyOrdered returns the item ids tagged for the given day
// (defaults to today, UTC). Display decoration only.
func (h *AnalyticsHandler) MostlyOrdered(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	day := time.Now().UTC()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	itemIDs, err := h.analyticsService.MostlyOrdered(restaurantID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"date":     day.UTC().Format("2006-01-02"),
		"item_ids": itemIDs,
	})
}

func (h *AnalyticsHandler) RestaurantStats(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	stats, err := h.analyticsService.RestaurantStats(middleware.UserID(c), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
