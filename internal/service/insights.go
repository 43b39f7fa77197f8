package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// MaxInsights caps the composed insight list.
const MaxInsights = 5

// SummaryTimeout bounds the optional generative summarizer call. A slower
// collaborator counts as unavailable and the template prose is used.
const SummaryTimeout = 5 * time.Second

// Per-rule confidence constants. These are fixed heuristics attached to
// each rule, not the output of a statistical test.
const (
	confidenceStreak    = 0.9
	confidenceImproving = 0.8
	confidenceDeclining = 0.75
	confidenceWeekend   = 0.7
	confidenceAnomaly   = 0.7
	confidenceTimeOfDay = 0.65
	confidenceMonthly   = 0.6
	confidenceLowWeek   = 0.55
)

// A day's stress this far above the recent average counts as an anomaly.
const anomalyStressFactor = 1.5

// Insight range and streak-rule thresholds.
const (
	insightHistoryDays  = 90
	minStreakForInsight = 3
)

// GetInsights loads the recent history, analyzes it, and composes insights.
func (s *intelligenceService) GetInsights(ctx context.Context, userID string) ([]models.Insight, error) {
	now := s.now()
	records, err := s.loadHistory(ctx, userID, now.AddDate(0, 0, -insightHistoryDays), now)
	if err != nil {
		return nil, err
	}

	analysis, err := s.AnalyzeHistory(ctx, records, []string{DefaultMetric})
	if err != nil {
		return nil, err
	}
	stats, err := s.ComputeStats(ctx, records)
	if err != nil {
		return nil, err
	}

	return s.ComposeInsights(ctx, analysis, stats, records)
}

// ComposeInsights maps statistical findings to a bounded list of insight
// records, strongest confidence first.
func (s *intelligenceService) ComposeInsights(ctx context.Context, analysis *models.TrendAnalysis, stats *models.StreakStats, recent []models.HistoryRecord) ([]models.Insight, error) {
	now := s.now()
	var insights []models.Insight

	add := func(insight models.Insight) {
		insight.CreatedAt = now
		insight.Description = s.phrase(ctx, insight)
		insights = append(insights, insight)
	}

	if analysis != nil {
		if summary, ok := analysis.Summary[DefaultMetric]; ok {
			switch summary.Trend {
			case models.TrendImproving:
				add(models.Insight{
					Type:        models.InsightTypeImprovement,
					Title:       "Your mood is trending up",
					Description: fmt.Sprintf("Your overall mood improved by %.1f%% over this period. Whatever you changed is working.", summary.ChangePercent),
					Confidence:  confidenceImproving,
					ActionItems: []string{
						"Note what habits changed recently and keep them going",
						"Revisit entries from your best days to spot the drivers",
					},
				})
			case models.TrendDeclining:
				add(models.Insight{
					Type:        models.InsightTypeWarning,
					Title:       "Your mood has been slipping",
					Description: fmt.Sprintf("Your overall mood changed by %.1f%% over this period. A gentle course-correction now beats a hard one later.", summary.ChangePercent),
					Confidence:  confidenceDeclining,
					ActionItems: []string{
						"Look at recent entries for recurring stressors",
						"Plan one restorative activity this week",
					},
				})
			}
		}

		if analysis.Patterns.WeekendEffect {
			add(models.Insight{
				Type:        models.InsightTypePattern,
				Title:       "Weekends feel different",
				Description: "Your weekend mood differs noticeably from weekdays. The gap is large enough to be a real pattern, not noise.",
				Confidence:  confidenceWeekend,
				ActionItems: []string{
					"Borrow one weekend habit for a weekday evening",
					"Check whether work boundaries drive the gap",
				},
			})
		}
		if analysis.Patterns.TimeOfDayEffect {
			add(models.Insight{
				Type:        models.InsightTypePattern,
				Title:       "Time of day shapes your mood",
				Description: "Your morning and evening entries score consistently differently. Scheduling demanding work in your better window may help.",
				Confidence:  confidenceTimeOfDay,
				ActionItems: []string{
					"Schedule hard tasks in your stronger window",
					"Protect a short wind-down before your weaker one",
				},
			})
		}
		if analysis.Patterns.MonthlyPattern {
			add(models.Insight{
				Type:        models.InsightTypePattern,
				Title:       "A monthly rhythm shows up",
				Description: "Your mood varies with the day of the month more than chance would explain. Knowing the cycle makes the low stretch easier to plan around.",
				Confidence:  confidenceMonthly,
				ActionItems: []string{
					"Mark the recurring low stretch in your calendar",
					"Front-load demanding commitments into the high stretch",
				},
			})
		}
	}

	if stats != nil {
		if stats.CurrentStreak >= minStreakForInsight {
			add(models.Insight{
				Type:        models.InsightTypeTrend,
				Title:       fmt.Sprintf("%d-day journaling streak", stats.CurrentStreak),
				Description: fmt.Sprintf("You've reflected %d days in a row. Consistency is what makes these analytics meaningful.", stats.CurrentStreak),
				Confidence:  confidenceStreak,
				ActionItems: []string{
					"Keep the streak alive with even a two-line entry",
				},
			})
		}
		if stats.AverageMood.ThisWeek > 0 && stats.AverageMood.ThisMonth > 0 &&
			stats.AverageMood.ThisWeek < stats.AverageMood.ThisMonth {
			add(models.Insight{
				Type:        models.InsightTypeAdvice,
				Title:       "This week is below your usual",
				Description: fmt.Sprintf("This week averages %.1f against %.1f for the month. Worth a lighter schedule if you can manage it.", stats.AverageMood.ThisWeek, stats.AverageMood.ThisMonth),
				Confidence:  confidenceLowWeek,
				ActionItems: []string{
					"Cut one optional commitment this week",
					"Prioritize sleep over late-evening screen time",
				},
			})
		}
	}

	if anomaly, ok := stressAnomaly(recent); ok {
		add(anomaly)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	})
	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights, nil
}

// stressAnomaly flags the latest day when its stress far exceeds the
// recent average.
func stressAnomaly(recent []models.HistoryRecord) (models.Insight, bool) {
	if len(recent) < 2 {
		return models.Insight{}, false
	}

	latest := recent[0]
	for _, rec := range recent[1:] {
		if rec.Date.After(latest.Date) {
			latest = rec
		}
	}

	var sum float64
	n := 0
	for _, rec := range recent {
		if rec.Date.Equal(latest.Date) {
			continue
		}
		sum += rec.MoodScore.Stress
		n++
	}
	if n == 0 {
		return models.Insight{}, false
	}
	avg := sum / float64(n)
	if avg <= 0 || latest.MoodScore.Stress <= avg*anomalyStressFactor {
		return models.Insight{}, false
	}

	return models.Insight{
		Type:        models.InsightTypeAnomaly,
		Title:       "Unusually high stress in your latest entry",
		Description: fmt.Sprintf("Your latest stress score of %.1f is well above your recent average of %.1f. One spike is information, not a verdict.", latest.MoodScore.Stress, avg),
		Confidence:  confidenceAnomaly,
		ActionItems: []string{
			"Name the single biggest stressor from that day",
			"If it recurs tomorrow, break it into the smallest next step",
		},
	}, true
}

// phrase asks the optional summarizer for richer prose, keeping the
// deterministic template text on any error or timeout. The collaborator is
// never allowed to block or fail insight composition.
func (s *intelligenceService) phrase(ctx context.Context, insight models.Insight) string {
	if s.summarizer == nil {
		return insight.Description
	}

	ctx, cancel := context.WithTimeout(ctx, SummaryTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Rewrite this journaling insight in two encouraging sentences, keeping every number: %q",
		insight.Description)

	text, err := s.summarize(ctx, prompt)
	if err != nil || text == "" {
		logger.Ctx(ctx).Debug("summarizer unavailable, using template prose",
			logger.String("insight_type", string(insight.Type)), logger.Err(err))
		return insight.Description
	}
	return text
}

// summarize isolates the collaborator call so a panicking implementation
// degrades to the fallback like any other failure.
func (s *intelligenceService) summarize(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("summarizer panic: %v", r)
		}
	}()
	return s.summarizer.Summarize(ctx, prompt)
}
