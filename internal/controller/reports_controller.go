package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cora/internal/report"
)

type ReportsController struct {
	stats  report.Stats
	router *gin.RouterGroup
}

func NewReportsController(router *gin.RouterGroup, stats report.Stats) *ReportsController {
	return &ReportsController{
		stats:  stats,
		router: router,
	}
}

func (rc *ReportsController) SetupRoutes() {
	reportsGroup := rc.router.Group("/reports")
	reportsGroup.GET("/weekly/validate", rc.validateWeekly)
}

func (rc *ReportsController) validateWeekly(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)

	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid user_id",
		})
		return
	}

	windowDays := report.ParseWindow(c.Query("window"))

	result, err := report.Validate(c.Request.Context(), rc.stats, userID, windowDays)

	if err != nil {
		// Treat a failed lookup as not enough data rather than surfacing a
		// raw database error to the user.
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to validate report data")
		c.JSON(200, gin.H{
			"valid":   false,
			"reason":  report.StatusInsufficientTotal,
			"message": "Unable to validate your expense data right now. Please try again.",
			"context": gin.H{},
		})
		return
	}

	c.JSON(200, gin.H{
		"valid":   result.Valid(),
		"reason":  result.Status,
		"message": report.Message(result.Status, result.Context),
		"context": result.Context,
	})
}
