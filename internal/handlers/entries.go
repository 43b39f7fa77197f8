package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noahsafar/sentiscore-sub000/internal/apierror"
	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/models"
	"github.com/noahsafar/sentiscore-sub000/internal/service"
	"github.com/noahsafar/sentiscore-sub000/internal/textscore"
)

const (
	defaultEntryLimit = 50
	maxEntryLimit     = 200
)

// EntryHandler handles journal entry HTTP requests
type EntryHandler struct {
	analysisService service.AnalysisService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(analysisService service.AnalysisService) *EntryHandler {
	return &EntryHandler{
		analysisService: analysisService,
	}
}

// CreateEntry handles POST /api/v1/entries
// Scores the transcript and persists the entry for the authenticated user.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "text", Message: "is required", Code: "required"},
		}))
		return
	}

	entry, err := h.analysisService.CreateEntry(c.Request.Context(), userID.(string), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, textscore.ErrInvalidInput) {
			apierror.WriteProblem(c, apierror.NewInvalidInputError(requestID))
			return
		}
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to create entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries handles GET /api/v1/entries
// Returns the user's entries newest first, paginated by limit and offset.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	limit, err := parsePositiveInt(c.DefaultQuery("limit", strconv.Itoa(defaultEntryLimit)))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "invalid limit parameter", "limit must be a positive integer"))
		return
	}
	if limit > maxEntryLimit {
		limit = maxEntryLimit
	}

	offset, err := parseNonNegativeInt(c.DefaultQuery("offset", "0"))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "invalid offset parameter", "offset must be a non-negative integer"))
		return
	}

	entries, err := h.analysisService.GetUserEntries(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to list entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"limit":   limit,
		"offset":  offset,
	})
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("must be non-negative")
	}
	return n, nil
}
