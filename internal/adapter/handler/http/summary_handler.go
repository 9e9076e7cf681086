package http

import (
	"net/http"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService ports.SummaryService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewSummaryHandler(
	summaryService ports.SummaryService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Garage summary
// @Description Vehicle count and total maintenance spend for a user
// @Tags summary
// @Accept json
// @Produce json
// @Param user_id path string true "User ID" example:"123e4567-e89b-12d3-a456-426614174000"
// @Success 200 {object} domain.GarageSummary "Summary"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /summary/{user_id} [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID := c.Param("user_id")

	summary, err := h.summaryService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get summary", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
