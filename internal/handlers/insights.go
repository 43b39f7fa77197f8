package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noahsafar/sentiscore-sub000/internal/apierror"
	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/service"
)

// InsightsHandler handles insights-related HTTP requests
type InsightsHandler struct {
	intelligenceService service.IntelligenceService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(intelligenceService service.IntelligenceService) *InsightsHandler {
	return &InsightsHandler{
		intelligenceService: intelligenceService,
	}
}

// GetInsights handles GET /api/v1/insights
// Returns the ranked insight records for the authenticated user.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	insights, err := h.intelligenceService.GetInsights(c.Request.Context(), userID.(string))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get insights", logger.Err(err), logger.String("user_id", userID.(string)))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights":    insights,
		"computed_at": time.Now(),
	})
}
