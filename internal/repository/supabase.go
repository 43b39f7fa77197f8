package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
	"github.com/noahsafar/sentiscore-sub000/pkg/supabase"
)

const entriesTable = "journal_entries"

// SupabaseEntryRepository persists journal entries through the Supabase
// PostgREST endpoint.
type SupabaseEntryRepository struct {
	client *supabase.Client
}

// NewSupabaseEntryRepository creates a Supabase-backed entry repository.
func NewSupabaseEntryRepository(client *supabase.Client) *SupabaseEntryRepository {
	return &SupabaseEntryRepository{client: client}
}

// entryRow is the wire shape of the journal_entries table. MoodScore and
// TextAnalysis are stored as jsonb columns.
type entryRow struct {
	ID         string              `json:"id,omitempty"`
	UserID     string              `json:"user_id"`
	Date       time.Time           `json:"date"`
	Transcript string              `json:"transcript"`
	MoodScore  models.MoodScore    `json:"mood_score"`
	Analysis   models.TextAnalysis `json:"analysis"`
	ScoreMode  models.ScoreMode    `json:"score_mode"`
	CreatedAt  time.Time           `json:"created_at,omitempty"`
	UpdatedAt  time.Time           `json:"updated_at,omitempty"`
}

func (r *SupabaseEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	row := entryRow{
		UserID:     entry.UserID,
		Date:       entry.Date,
		Transcript: entry.Transcript,
		MoodScore:  entry.MoodScore,
		Analysis:   entry.Analysis,
		ScoreMode:  entry.ScoreMode,
	}

	var created []entryRow
	if err := r.client.Insert(entriesTable, row, &created); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("create entry returned no rows")
	}

	result := created[0].toModel()
	return &result, nil
}

func (r *SupabaseEntryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	var rows []entryRow
	err := r.client.Select(entriesTable, map[string]string{
		"id":    "eq." + id,
		"limit": "1",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	result := rows[0].toModel()
	return &result, nil
}

func (r *SupabaseEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	params := map[string]string{
		"user_id": "eq." + userID,
		"order":   "date.desc",
	}
	if limit > 0 {
		params["limit"] = fmt.Sprintf("%d", limit)
	}
	if offset > 0 {
		params["offset"] = fmt.Sprintf("%d", offset)
	}

	var rows []entryRow
	if err := r.client.Select(entriesTable, params, &rows); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return rowsToModels(rows), nil
}

func (r *SupabaseEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.Entry, error) {
	var rows []entryRow
	err := r.client.Select(entriesTable, map[string]string{
		"user_id": "eq." + userID,
		"and":     fmt.Sprintf("(date.gte.%s,date.lte.%s)", startDate.Format(time.RFC3339), endDate.Format(time.RFC3339)),
		"order":   "date.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries in range: %w", err)
	}
	return rowsToModels(rows), nil
}

func (r *SupabaseEntryRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(entriesTable, map[string]string{"id": "eq." + id}); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (r *SupabaseEntryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var rows []entryRow
	err := r.client.Select(entriesTable, map[string]string{
		"user_id": "eq." + userID,
		"select":  "id",
	}, &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return int64(len(rows)), nil
}

func (row entryRow) toModel() models.Entry {
	return models.Entry{
		ID:         row.ID,
		UserID:     row.UserID,
		Date:       row.Date,
		Transcript: row.Transcript,
		MoodScore:  row.MoodScore,
		Analysis:   row.Analysis,
		ScoreMode:  row.ScoreMode,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func rowsToModels(rows []entryRow) []models.Entry {
	entries := make([]models.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toModel())
	}
	return entries
}
