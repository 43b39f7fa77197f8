package models

import "time"

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightTypePattern     InsightType = "pattern"
	InsightTypeTrend       InsightType = "trend"
	InsightTypeAnomaly     InsightType = "anomaly"
	InsightTypeImprovement InsightType = "improvement"
	InsightTypeWarning     InsightType = "warning"
	InsightTypeAdvice      InsightType = "advice"
)

// TrendDirection is the qualitative classification of a metric's slope.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// TrendPoint is one entry's contribution to a trend series.
type TrendPoint struct {
	Date         time.Time          `json:"date"`
	OverallScore float64            `json:"overall_score"`
	Breakdown    map[string]float64 `json:"breakdown"` // the five sub-scores
}

// TrendSummary describes one requested metric over the analyzed range.
type TrendSummary struct {
	Average        float64        `json:"average"`
	Trend          TrendDirection `json:"trend"`
	ChangePercent  float64        `json:"change_percent"`
	WeeklyAverages []float64      `json:"weekly_averages"`
}

// PatternFlags are the behavioral regularities detected over a series.
type PatternFlags struct {
	WeekendEffect   bool `json:"weekend_effect"`
	TimeOfDayEffect bool `json:"time_of_day_effect"`
	MonthlyPattern  bool `json:"monthly_pattern"`
}

// TrendAnalysis is the full result of analyzing an entry history.
type TrendAnalysis struct {
	Trends   []TrendPoint            `json:"trends"`
	Summary  map[string]TrendSummary `json:"summary"`
	Patterns PatternFlags            `json:"patterns"`
}

// PeriodAverages holds the mean daily mood for the common calendar windows.
type PeriodAverages struct {
	ThisWeek  float64 `json:"this_week"`
	ThisMonth float64 `json:"this_month"`
	LastMonth float64 `json:"last_month"`
}

// StreakStats is the derived streak/average view over the full history.
// It is recomputed on every request and never persisted.
type StreakStats struct {
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	TotalEntries  int            `json:"total_entries"`
	AverageMood   PeriodAverages `json:"average_mood"`
}

// Insight is a packaged human-readable finding with suggested actions.
// Confidence values are fixed per-rule constants, not statistical tests.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  float64     `json:"confidence"`
	ActionItems []string    `json:"action_items"`
	CreatedAt   time.Time   `json:"created_at"`
}
