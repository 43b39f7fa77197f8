package service

import (
	"context"
	"fmt"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/models"
	"github.com/noahsafar/sentiscore-sub000/internal/repository"
	"github.com/noahsafar/sentiscore-sub000/internal/textscore"
)

type analysisService struct {
	scorer    *textscore.Scorer
	entryRepo repository.EntryRepository
}

// NewAnalysisService creates the single-entry analysis service.
func NewAnalysisService(scorer *textscore.Scorer, entryRepo repository.EntryRepository) AnalysisService {
	return &analysisService{
		scorer:    scorer,
		entryRepo: entryRepo,
	}
}

// AnalyzeText scores a transcript with the rich-signal pipeline.
func (s *analysisService) AnalyzeText(ctx context.Context, text string) (*models.AnalyzeTextResponse, error) {
	score, analysis, err := s.scorer.Analyze(text)
	if err != nil {
		return nil, err
	}
	return &models.AnalyzeTextResponse{
		MoodScore: score,
		Analysis:  analysis,
		Mode:      models.ScoreModeFull,
	}, nil
}

// AnalyzeTextBasic scores a transcript with the coarse keyword fallback.
func (s *analysisService) AnalyzeTextBasic(ctx context.Context, text string) (*models.AnalyzeTextResponse, error) {
	score, err := s.scorer.AnalyzeBasic(text)
	if err != nil {
		return nil, err
	}
	return &models.AnalyzeTextResponse{
		MoodScore: score,
		Mode:      models.ScoreModeBasic,
	}, nil
}

// CreateEntry scores the text and stores a new immutable entry. Re-analysis
// produces a new entry rather than mutating an old one.
func (s *analysisService) CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error) {
	score, analysis, err := s.scorer.Analyze(req.Text)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := &models.Entry{
		UserID:     userID,
		Date:       date,
		Transcript: req.Text,
		MoodScore:  score,
		Analysis:   analysis,
		ScoreMode:  models.ScoreModeFull,
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	logger.Ctx(ctx).Info("journal entry analyzed",
		logger.String("entry_id", created.ID),
		logger.Float64("overall", created.MoodScore.Overall))

	return created, nil
}

// GetUserEntries lists a user's entries, newest first.
func (s *analysisService) GetUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	entries, err := s.entryRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	return entries, nil
}
