package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noahsafar/sentiscore-sub000/internal/apierror"
	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/models"
	"github.com/noahsafar/sentiscore-sub000/internal/service"
	"github.com/noahsafar/sentiscore-sub000/internal/textscore"
)

// AnalysisHandler handles stateless text scoring requests
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// AnalyzeText handles POST /api/v1/analysis/text
// Scores a transcript without persisting anything. The mode=basic query
// parameter selects the lightweight keyword fallback scorer.
func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	var req models.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	var (
		result *models.AnalyzeTextResponse
		err    error
	)
	if c.Query("mode") == string(models.ScoreModeBasic) {
		result, err = h.analysisService.AnalyzeTextBasic(c.Request.Context(), req.Text)
	} else {
		result, err = h.analysisService.AnalyzeText(c.Request.Context(), req.Text)
	}
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, textscore.ErrInvalidInput) {
			apierror.WriteProblem(c, apierror.NewInvalidInputError(requestID))
			return
		}
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to analyze text", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}
