package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
	"github.com/noahsafar/sentiscore-sub000/internal/repository"
)

// Thresholds and minimum sample sizes for trend and pattern detection.
// These values define the observable contract of the analyzer; they are
// empirically chosen and reproduced exactly, not tunable defaults.
const (
	// OLS slope beyond which a metric counts as improving/declining
	SlopeThreshold = 0.05

	// Minimum points for a non-stable trend direction
	MinPointsForTrend = 3

	// Minimum points for a non-zero percent change
	MinPointsForChange = 4

	// Minimum entries before any pattern flag can fire
	MinEntriesForPattern = 7

	// Minimum entries for monthly cyclicality detection
	MinEntriesForMonthly = 28

	// Mean-difference thresholds for the behavioral pattern flags
	WeekendEffectThreshold   = 0.5
	TimeOfDayEffectThreshold = 0.3

	// Population variance threshold for monthly cyclicality
	MonthlyVarianceThreshold = 0.5

	// Each time-of-day bucket needs more than this many entries
	MinTimeOfDayBucketSize = 3
)

// Morning and evening windows for the time-of-day effect, in local hours.
const (
	morningStartHour = 5
	morningEndHour   = 11
	eveningStartHour = 17
	eveningEndHour   = 21
)

// DefaultMetric is analyzed when the caller requests no metrics.
const DefaultMetric = "overall"

// trendMetrics maps a requested metric name to its accessor. Unknown
// metric names are silently skipped.
var trendMetrics = map[string]func(models.MoodScore) float64{
	"overall":             func(s models.MoodScore) float64 { return s.Overall },
	"stress":              func(s models.MoodScore) float64 { return s.Stress },
	"happiness":           func(s models.MoodScore) float64 { return s.Happiness },
	"clarity":             func(s models.MoodScore) float64 { return s.Clarity },
	"energy":              func(s models.MoodScore) float64 { return s.Energy },
	"emotional_stability": func(s models.MoodScore) float64 { return s.EmotionalStability },
}

type intelligenceService struct {
	entryRepo  repository.EntryRepository
	summarizer Summarizer
	now        func() time.Time
}

// NewIntelligenceService creates the longitudinal analytics service.
// summarizer may be nil; insight prose then always comes from the
// deterministic templates.
func NewIntelligenceService(entryRepo repository.EntryRepository, summarizer Summarizer) IntelligenceService {
	return &intelligenceService{
		entryRepo:  entryRepo,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// AnalyzeHistory turns a time-ordered entry series into trend points,
// per-metric summaries, and behavioral pattern flags. An empty history is a
// defined result, not an error.
func (s *intelligenceService) AnalyzeHistory(ctx context.Context, entries []models.HistoryRecord, metrics []string) (*models.TrendAnalysis, error) {
	analysis := &models.TrendAnalysis{
		Trends:  []models.TrendPoint{},
		Summary: make(map[string]models.TrendSummary),
	}
	if len(entries) == 0 {
		return analysis, nil
	}

	sorted := make([]models.HistoryRecord, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for _, rec := range sorted {
		analysis.Trends = append(analysis.Trends, models.TrendPoint{
			Date:         rec.Date,
			OverallScore: rec.MoodScore.Overall,
			Breakdown: map[string]float64{
				"stress":              rec.MoodScore.Stress,
				"happiness":           rec.MoodScore.Happiness,
				"clarity":             rec.MoodScore.Clarity,
				"energy":              rec.MoodScore.Energy,
				"emotional_stability": rec.MoodScore.EmotionalStability,
			},
		})
	}

	if len(metrics) == 0 {
		metrics = []string{DefaultMetric}
	}
	for _, metric := range metrics {
		accessor, ok := trendMetrics[metric]
		if !ok {
			continue
		}
		analysis.Summary[metric] = summarizeMetric(sorted, accessor)
	}

	analysis.Patterns = detectPatterns(sorted)

	return analysis, nil
}

// ComputeStats derives streaks and period averages from the full entry
// history. The result is a fresh view; nothing is persisted.
func (s *intelligenceService) ComputeStats(ctx context.Context, entries []models.HistoryRecord) (*models.StreakStats, error) {
	return computeStatsAt(entries, s.now()), nil
}

// GetTrends loads a user's entries for the range and analyzes them.
func (s *intelligenceService) GetTrends(ctx context.Context, userID string, metrics []string, startDate, endDate time.Time) (*models.TrendAnalysis, error) {
	records, err := s.loadHistory(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeHistory(ctx, records, metrics)
}

// GetStats loads a user's full history and computes streak stats.
func (s *intelligenceService) GetStats(ctx context.Context, userID string) (*models.StreakStats, error) {
	entries, err := s.entryRepo.GetByUserID(ctx, userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	records := make([]models.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, models.HistoryRecordFromEntry(e))
	}
	return s.ComputeStats(ctx, records)
}

func (s *intelligenceService) loadHistory(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.HistoryRecord, error) {
	entries, err := s.entryRepo.GetByUserIDAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	records := make([]models.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, models.HistoryRecordFromEntry(e))
	}
	return records, nil
}

// =============================================================================
// Trend statistics
// =============================================================================

func summarizeMetric(sorted []models.HistoryRecord, accessor func(models.MoodScore) float64) models.TrendSummary {
	values := make([]float64, len(sorted))
	for i, rec := range sorted {
		values[i] = accessor(rec.MoodScore)
	}

	return models.TrendSummary{
		Average:        round1(mean(values)),
		Trend:          trendDirection(values),
		ChangePercent:  round1(changePercent(values)),
		WeeklyAverages: weeklyAverages(sorted, accessor),
	}
}

// trendDirection classifies the OLS slope of (index, value) pairs. Fewer
// than three points is stable by definition.
func trendDirection(values []float64) models.TrendDirection {
	if len(values) < MinPointsForTrend {
		return models.TrendStable
	}

	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return models.TrendStable
	}
	slope := (n*sumXY - sumX*sumY) / denom

	switch {
	case slope > SlopeThreshold:
		return models.TrendImproving
	case slope < -SlopeThreshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

// changePercent compares the mean of the second half against the first
// using a midpoint split. Fewer than four points yields zero.
func changePercent(values []float64) float64 {
	if len(values) < MinPointsForChange {
		return 0
	}

	mid := len(values) / 2
	firstMean := mean(values[:mid])
	if firstMean == 0 {
		return 0
	}
	secondMean := mean(values[mid:])

	return (secondMean - firstMean) / firstMean * 100
}

// weeklyAverages groups points into calendar weeks keyed by week-start date
// and averages within each group, ordered by week.
func weeklyAverages(sorted []models.HistoryRecord, accessor func(models.MoodScore) float64) []float64 {
	weekSums := make(map[time.Time]float64)
	weekCounts := make(map[time.Time]int)
	for _, rec := range sorted {
		week := weekStart(rec.Date)
		weekSums[week] += accessor(rec.MoodScore)
		weekCounts[week]++
	}

	weeks := make([]time.Time, 0, len(weekSums))
	for week := range weekSums {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	averages := make([]float64, 0, len(weeks))
	for _, week := range weeks {
		averages = append(averages, round1(weekSums[week]/float64(weekCounts[week])))
	}
	return averages
}

// =============================================================================
// Pattern detection
// =============================================================================

func detectPatterns(entries []models.HistoryRecord) models.PatternFlags {
	if len(entries) < MinEntriesForPattern {
		return models.PatternFlags{}
	}

	return models.PatternFlags{
		WeekendEffect:   detectWeekendEffect(entries),
		TimeOfDayEffect: detectTimeOfDayEffect(entries),
		MonthlyPattern:  detectMonthlyPattern(entries),
	}
}

func detectWeekendEffect(entries []models.HistoryRecord) bool {
	var weekend, weekday []float64
	for _, rec := range entries {
		switch rec.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, rec.MoodScore.Overall)
		default:
			weekday = append(weekday, rec.MoodScore.Overall)
		}
	}
	if len(weekend) == 0 || len(weekday) == 0 {
		return false
	}
	return math.Abs(mean(weekend)-mean(weekday)) > WeekendEffectThreshold
}

func detectTimeOfDayEffect(entries []models.HistoryRecord) bool {
	var morning, evening []float64
	for _, rec := range entries {
		hour := rec.Date.Hour()
		switch {
		case hour >= morningStartHour && hour <= morningEndHour:
			morning = append(morning, rec.MoodScore.Overall)
		case hour >= eveningStartHour && hour <= eveningEndHour:
			evening = append(evening, rec.MoodScore.Overall)
		}
	}
	if len(morning) <= MinTimeOfDayBucketSize || len(evening) <= MinTimeOfDayBucketSize {
		return false
	}
	return math.Abs(mean(morning)-mean(evening)) > TimeOfDayEffectThreshold
}

func detectMonthlyPattern(entries []models.HistoryRecord) bool {
	if len(entries) < MinEntriesForMonthly {
		return false
	}

	daySums := make(map[int]float64)
	dayCounts := make(map[int]int)
	for _, rec := range entries {
		day := rec.Date.Day()
		daySums[day] += rec.MoodScore.Overall
		dayCounts[day]++
	}

	groupMeans := make([]float64, 0, len(daySums))
	for day, sum := range daySums {
		groupMeans = append(groupMeans, sum/float64(dayCounts[day]))
	}

	return populationVariance(groupMeans) > MonthlyVarianceThreshold
}

// =============================================================================
// Streak & period-average computation
// =============================================================================

// computeStatsAt derives StreakStats relative to the given "now". Split out
// from ComputeStats so the streak walk is testable against a fixed clock.
func computeStatsAt(entries []models.HistoryRecord, now time.Time) *models.StreakStats {
	stats := &models.StreakStats{TotalEntries: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	dayMood := dailyMoods(entries)

	days := make([]time.Time, 0, len(dayMood))
	for day := range dayMood {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	stats.CurrentStreak = currentStreak(dayMood, now)
	stats.LongestStreak = longestStreak(days)
	stats.AverageMood = periodAverages(dayMood, now)

	return stats
}

// dailyMoods groups entries by calendar day; a day's representative mood is
// the mean of its entries' overall scores.
func dailyMoods(entries []models.HistoryRecord) map[time.Time]float64 {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, rec := range entries {
		day := dayOf(rec.Date)
		sums[day] += rec.MoodScore.Overall
		counts[day]++
	}

	moods := make(map[time.Time]float64, len(sums))
	for day, sum := range sums {
		moods[day] = sum / float64(counts[day])
	}
	return moods
}

// currentStreak walks backward day-by-day from today and counts contiguous
// represented days. A missing today is forgiven once: the walk may anchor
// on yesterday instead, so the streak survives until a real gap appears.
func currentStreak(dayMood map[time.Time]float64, now time.Time) int {
	anchor := dayOf(now)
	if _, ok := dayMood[anchor]; !ok {
		anchor = anchor.AddDate(0, 0, -1)
		if _, ok := dayMood[anchor]; !ok {
			return 0
		}
	}

	streak := 0
	for day := anchor; ; day = day.AddDate(0, 0, -1) {
		if _, ok := dayMood[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// longestStreak walks all represented days chronologically, counting runs
// of consecutive calendar days. Single-day runs count.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func periodAverages(dayMood map[time.Time]float64, now time.Time) models.PeriodAverages {
	thisWeekStart := weekStart(now)
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)

	var weekVals, monthVals, lastMonthVals []float64
	for day, mood := range dayMood {
		if day.After(now) {
			continue
		}
		if !day.Before(thisWeekStart) {
			weekVals = append(weekVals, mood)
		}
		if !day.Before(thisMonthStart) {
			monthVals = append(monthVals, mood)
		} else if !day.Before(lastMonthStart) {
			lastMonthVals = append(lastMonthVals, mood)
		}
	}

	return models.PeriodAverages{
		ThisWeek:  round1(mean(weekVals)),
		ThisMonth: round1(mean(monthVals)),
		LastMonth: round1(mean(lastMonthVals)),
	}
}

// =============================================================================
// Shared numeric helpers
// =============================================================================

// dayOf truncates a timestamp to its local calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the local Sunday starting the week containing t.
func weekStart(t time.Time) time.Time {
	return dayOf(t).AddDate(0, 0, -int(t.Weekday()))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

// round1 rounds to one decimal, half away from zero.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
