package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
	"github.com/noahsafar/sentiscore-sub000/internal/textscore"
)

// mockEntryRepository is a mock implementation of EntryRepository for testing
type mockEntryRepository struct {
	entries     map[string]*models.Entry
	createCalls int
	createErr   error
	nextID      int
}

func newMockEntryRepository() *mockEntryRepository {
	return &mockEntryRepository{entries: make(map[string]*models.Entry)}
}

func (m *mockEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *entry
	if stored.ID == "" {
		m.nextID++
		stored.ID = fmt.Sprintf("entry-%d", m.nextID)
	}
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = time.Now()
	m.entries[stored.ID] = &stored
	return &stored, nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	if entry, ok := m.entries[id]; ok {
		return entry, nil
	}
	return nil, nil
}

func (m *mockEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	var result []models.Entry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.Entry, error) {
	var result []models.Entry
	for _, entry := range m.entries {
		if entry.UserID == userID && !entry.Date.Before(startDate) && !entry.Date.After(endDate) {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, id string) error {
	delete(m.entries, id)
	return nil
}

func (m *mockEntryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	entries, _ := m.GetByUserID(ctx, userID, 0, 0)
	return int64(len(entries)), nil
}

func TestAnalyzeTextFullMode(t *testing.T) {
	svc := NewAnalysisService(textscore.NewScorer(), newMockEntryRepository())

	result, err := svc.AnalyzeText(context.Background(), "I'm feeling stressed and overwhelmed with deadlines")
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	if result.Mode != models.ScoreModeFull {
		t.Errorf("Expected full mode, got %q", result.Mode)
	}
	if result.MoodScore.Stress < 6.5 {
		t.Errorf("Expected elevated stress, got %v", result.MoodScore.Stress)
	}
	if result.Analysis.Sentiment.Label != "negative" {
		t.Errorf("Expected negative sentiment, got %q", result.Analysis.Sentiment.Label)
	}
}

func TestAnalyzeTextBasicMode(t *testing.T) {
	svc := NewAnalysisService(textscore.NewScorer(), newMockEntryRepository())

	result, err := svc.AnalyzeTextBasic(context.Background(), "a quiet day")
	if err != nil {
		t.Fatalf("AnalyzeTextBasic returned error: %v", err)
	}
	if result.Mode != models.ScoreModeBasic {
		t.Errorf("Expected basic mode, got %q", result.Mode)
	}
}

func TestAnalyzeTextInvalidInput(t *testing.T) {
	svc := NewAnalysisService(textscore.NewScorer(), newMockEntryRepository())

	_, err := svc.AnalyzeText(context.Background(), "oops \xff")
	if !errors.Is(err, textscore.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateEntry(t *testing.T) {
	repo := newMockEntryRepository()
	svc := NewAnalysisService(textscore.NewScorer(), repo)

	date := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)
	entry, err := svc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{
		Text: "happy and grateful for a productive day",
		Date: &date,
	})
	if err != nil {
		t.Fatalf("CreateEntry returned error: %v", err)
	}

	if entry.ID == "" {
		t.Error("Expected a generated entry ID")
	}
	if entry.UserID != "user-1" {
		t.Errorf("Expected user-1, got %q", entry.UserID)
	}
	if !entry.Date.Equal(date) {
		t.Errorf("Expected supplied date %v, got %v", date, entry.Date)
	}
	if entry.ScoreMode != models.ScoreModeFull {
		t.Errorf("Expected full score mode, got %q", entry.ScoreMode)
	}
	if entry.MoodScore.Happiness < 7.0 {
		t.Errorf("Expected elevated happiness, got %v", entry.MoodScore.Happiness)
	}
	if repo.createCalls != 1 {
		t.Errorf("Expected 1 create call, got %d", repo.createCalls)
	}
}

func TestCreateEntryDefaultsDate(t *testing.T) {
	repo := newMockEntryRepository()
	svc := NewAnalysisService(textscore.NewScorer(), repo)

	before := time.Now()
	entry, err := svc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{Text: "an ordinary day"})
	if err != nil {
		t.Fatalf("CreateEntry returned error: %v", err)
	}
	after := time.Now()

	if entry.Date.Before(before) || entry.Date.After(after) {
		t.Errorf("Expected entry date to default to now, got %v", entry.Date)
	}
}

func TestCreateEntryInvalidInputNotStored(t *testing.T) {
	repo := newMockEntryRepository()
	svc := NewAnalysisService(textscore.NewScorer(), repo)

	_, err := svc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{Text: "bad \xfe bytes"})
	if !errors.Is(err, textscore.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("Expected no create calls for invalid input, got %d", repo.createCalls)
	}
}

func TestCreateEntryRepoFailure(t *testing.T) {
	repo := newMockEntryRepository()
	repo.createErr = errors.New("connection refused")
	svc := NewAnalysisService(textscore.NewScorer(), repo)

	_, err := svc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{Text: "fine day"})
	if err == nil {
		t.Fatal("Expected error from failing repository")
	}
}

func TestGetInsightsEndToEnd(t *testing.T) {
	repo := newMockEntryRepository()
	scorer := textscore.NewScorer()
	analysisSvc := NewAnalysisService(scorer, repo)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	intelligence := &intelligenceService{
		entryRepo: repo,
		now:       func() time.Time { return now },
	}

	// Five consecutive daily entries ending today
	for i := 4; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		_, err := analysisSvc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{
			Text: "happy and grateful for a great productive day",
			Date: &date,
		})
		if err != nil {
			t.Fatalf("CreateEntry returned error: %v", err)
		}
	}

	insights, err := intelligence.GetInsights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetInsights returned error: %v", err)
	}

	if len(insights) == 0 {
		t.Fatal("Expected at least one insight for a 5-day streak")
	}
	if len(insights) > MaxInsights {
		t.Errorf("Expected at most %d insights, got %d", MaxInsights, len(insights))
	}

	foundStreak := false
	for _, insight := range insights {
		if insight.Type == models.InsightTypeTrend {
			foundStreak = true
		}
	}
	if !foundStreak {
		t.Error("Expected a streak insight")
	}
}
