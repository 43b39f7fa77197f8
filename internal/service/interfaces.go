package service

import (
	"context"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// AnalysisService defines the interface for single-entry scoring and entry
// management.
type AnalysisService interface {
	AnalyzeText(ctx context.Context, text string) (*models.AnalyzeTextResponse, error)
	AnalyzeTextBasic(ctx context.Context, text string) (*models.AnalyzeTextResponse, error)
	CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error)
	GetUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error)
}

// IntelligenceService defines the interface for longitudinal analytics.
// AnalyzeHistory, ComputeStats, and ComposeInsights are pure over their
// inputs; the Get* methods load the history through the repository first.
type IntelligenceService interface {
	AnalyzeHistory(ctx context.Context, entries []models.HistoryRecord, metrics []string) (*models.TrendAnalysis, error)
	ComputeStats(ctx context.Context, entries []models.HistoryRecord) (*models.StreakStats, error)
	ComposeInsights(ctx context.Context, analysis *models.TrendAnalysis, stats *models.StreakStats, recent []models.HistoryRecord) ([]models.Insight, error)

	GetTrends(ctx context.Context, userID string, metrics []string, startDate, endDate time.Time) (*models.TrendAnalysis, error)
	GetStats(ctx context.Context, userID string) (*models.StreakStats, error)
	GetInsights(ctx context.Context, userID string) ([]models.Insight, error)
}

// Summarizer is the optional generative-text collaborator used to phrase
// insight descriptions. Implementations are best-effort: any error or
// timeout is absorbed by the composer's deterministic fallback.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
