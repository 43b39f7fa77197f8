package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noahsafar/sentiscore-sub000/internal/apierror"
	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/service"
)

// AnalyticsHandler handles trend and stats HTTP requests
type AnalyticsHandler struct {
	intelligenceService service.IntelligenceService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(intelligenceService service.IntelligenceService) *AnalyticsHandler {
	return &AnalyticsHandler{
		intelligenceService: intelligenceService,
	}
}

// GetTrends handles GET /api/v1/analytics/trends
// Query parameters: metrics (comma-separated), start_date, end_date (RFC3339).
// Defaults to the overall metric over the last 30 days.
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	metrics := []string{service.DefaultMetric}
	if metricsStr := c.Query("metrics"); metricsStr != "" {
		metrics = metrics[:0]
		for _, m := range strings.Split(metricsStr, ",") {
			if m = strings.TrimSpace(m); m != "" {
				metrics = append(metrics, m)
			}
		}
	}

	var startDate, endDate time.Time
	var err error

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		startDate, err = time.Parse(time.RFC3339, startDateStr)
		if err != nil {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "invalid start_date format", "start_date must be an RFC3339 timestamp"))
			return
		}
	} else {
		// Default to 30 days ago
		startDate = time.Now().AddDate(0, 0, -30)
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		endDate, err = time.Parse(time.RFC3339, endDateStr)
		if err != nil {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "invalid end_date format", "end_date must be an RFC3339 timestamp"))
			return
		}
	} else {
		endDate = time.Now()
	}

	trends, err := h.intelligenceService.GetTrends(c.Request.Context(), userID.(string), metrics, startDate, endDate)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get trends", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, trends)
}

// GetStats handles GET /api/v1/analytics/stats
// Returns journaling streaks and period averages for the authenticated user.
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	stats, err := h.intelligenceService.GetStats(c.Request.Context(), userID.(string))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get stats", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, stats)
}
