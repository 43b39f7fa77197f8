package models

import "time"

// Entry represents a single journal entry with its derived analysis.
// Date is a full timestamp, not a calendar day - several entries can share
// a day and the analytics layer averages them.
type Entry struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	Date       time.Time    `json:"date"`
	Transcript string       `json:"transcript"`
	MoodScore  MoodScore    `json:"mood_score"`
	Analysis   TextAnalysis `json:"analysis"`
	ScoreMode  ScoreMode    `json:"score_mode"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// HistoryRecord is the read-only projection of an Entry the analytics layer
// consumes. It deliberately carries no transport or storage concerns.
type HistoryRecord struct {
	Date       time.Time    `json:"date"`
	Transcript string       `json:"transcript"`
	MoodScore  MoodScore    `json:"mood_score"`
	Analysis   TextAnalysis `json:"analysis"`
}

// HistoryRecordFromEntry projects a stored entry into the analytics shape.
func HistoryRecordFromEntry(e Entry) HistoryRecord {
	return HistoryRecord{
		Date:       e.Date,
		Transcript: e.Transcript,
		MoodScore:  e.MoodScore,
		Analysis:   e.Analysis,
	}
}

// CreateEntryRequest is the request body for creating a journal entry.
type CreateEntryRequest struct {
	Text string     `json:"text" binding:"required"`
	Date *time.Time `json:"date"`
}

// AnalyzeTextRequest is the request body for stateless text scoring.
type AnalyzeTextRequest struct {
	Text string `json:"text"`
}

// AnalyzeTextResponse is the result of scoring a single transcript.
type AnalyzeTextResponse struct {
	MoodScore MoodScore    `json:"mood_score"`
	Analysis  TextAnalysis `json:"analysis"`
	Mode      ScoreMode    `json:"mode"`
}
