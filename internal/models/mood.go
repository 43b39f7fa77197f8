package models

// MoodScore holds the six bounded mood dimensions derived from a journal
// entry. Every field lives in [0,10] with one decimal of precision, and
// Overall is always the weighted function of the other five (or the basic
// fallback mean) - it is never set independently.
type MoodScore struct {
	Stress             float64 `json:"stress"`
	Happiness          float64 `json:"happiness"`
	Clarity            float64 `json:"clarity"`
	Energy             float64 `json:"energy"`
	EmotionalStability float64 `json:"emotional_stability"`
	Overall            float64 `json:"overall"`
}

// ScoreMode distinguishes how a MoodScore was produced.
type ScoreMode string

const (
	// ScoreModeFull is the rich-signal pipeline (lexicons + cognitive/tone).
	ScoreModeFull ScoreMode = "full"
	// ScoreModeBasic is the coarse keyword fallback with controlled jitter.
	ScoreModeBasic ScoreMode = "basic"
)

// Sentiment is the coarse lexical sentiment of a transcript.
type Sentiment struct {
	Score      float64 `json:"score"` // signed, clamped to [-5,5]
	Label      string  `json:"label"` // "positive", "negative", "neutral"
	Confidence float64 `json:"confidence"`
}

// EmotionScore is one entry of the ranked emotion breakdown.
type EmotionScore struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"` // share of all emotion hits, [0,1]
}

// Emotions holds the ranked emotion taxonomy results for a transcript.
type Emotions struct {
	Primary   string         `json:"primary"`
	Secondary string         `json:"secondary,omitempty"`
	All       []EmotionScore `json:"all"` // score desc, capped at 5
}

// Tone holds voice-shape signals, each in [0,1].
type Tone struct {
	Energy  float64 `json:"energy"`
	Valence float64 `json:"valence"`
	Tension float64 `json:"tension"`
}

// Cognitive holds clarity-of-thought signals, each in [0,1].
type Cognitive struct {
	Clarity       float64 `json:"clarity"`
	Focus         float64 `json:"focus"`
	CognitiveLoad float64 `json:"cognitive_load"`
}

// TextAnalysis is the auxiliary structured output accompanying a MoodScore.
type TextAnalysis struct {
	Sentiment Sentiment `json:"sentiment"`
	Emotions  Emotions  `json:"emotions"`
	Tone      Tone      `json:"tone"`
	Cognitive Cognitive `json:"cognitive"`
	Keywords  []string  `json:"keywords"`
}
