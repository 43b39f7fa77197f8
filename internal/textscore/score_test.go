package textscore

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

func allDimensions(s models.MoodScore) []float64 {
	return []float64{s.Stress, s.Happiness, s.Clarity, s.Energy, s.EmotionalStability, s.Overall}
}

func TestAnalyzeBounds(t *testing.T) {
	scorer := NewScorer()

	texts := []string{
		"stressed stressed stressed overwhelmed panic deadline deadline burnout",
		"happy joyful thrilled ecstatic grateful wonderful amazing fantastic love",
		"tired exhausted drained fatigued sluggish weary sleepy",
		"a perfectly ordinary day with nothing remarkable",
		"maybe perhaps possibly somewhat unclear unsure",
	}

	for _, text := range texts {
		score, _, err := scorer.Analyze(text)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", text, err)
		}
		for i, v := range allDimensions(score) {
			if v < 0 || v > 10 {
				t.Errorf("Analyze(%q) dimension %d = %v, outside [0,10]", text, i, v)
			}
			if math.Abs(v*10-math.Round(v*10)) > 1e-9 {
				t.Errorf("Analyze(%q) dimension %d = %v, not rounded to one decimal", text, i, v)
			}
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	scorer := NewScorer()
	text := "Today was busy but good, I stayed focused and got a lot done"

	first, firstAnalysis, err := scorer.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	for i := 0; i < 10; i++ {
		score, analysis, err := scorer.Analyze(text)
		if err != nil {
			t.Fatalf("Analyze returned error: %v", err)
		}
		if score != first {
			t.Fatalf("Analyze not deterministic: %+v vs %+v", score, first)
		}
		if !reflect.DeepEqual(analysis, firstAnalysis) {
			t.Fatalf("Analysis not deterministic: %+v vs %+v", analysis, firstAnalysis)
		}
	}
}

func TestAnalyzeOverallInvariant(t *testing.T) {
	scorer := NewScorer()

	texts := []string{
		"stressed and overwhelmed with deadlines",
		"happy and grateful for a great productive day",
		"tired but content, a quiet steady evening",
		"confused and scattered, nothing got done",
	}

	for _, text := range texts {
		score, _, err := scorer.Analyze(text)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", text, err)
		}

		want := 0.30*score.Happiness + 0.25*(10-score.Stress) +
			0.20*score.Clarity + 0.15*score.Energy + 0.10*score.EmotionalStability
		// 0.05 is the rounding half-step; the epsilon absorbs float noise
		if math.Abs(score.Overall-want) > 0.05+1e-9 {
			t.Errorf("Analyze(%q) overall = %v, want %v within 0.05", text, score.Overall, want)
		}
	}
}

func TestAnalyzeEmptyTextNeutral(t *testing.T) {
	scorer := NewScorer()

	for _, text := range []string{"", "   \n\t", "!!! ..."} {
		score, analysis, err := scorer.Analyze(text)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", text, err)
		}

		for i, v := range allDimensions(score) {
			if v != 5.0 {
				t.Errorf("Analyze(%q) dimension %d = %v, want neutral 5.0", text, i, v)
			}
		}
		if analysis.Sentiment.Label != "neutral" {
			t.Errorf("Analyze(%q) sentiment label = %q, want neutral", text, analysis.Sentiment.Label)
		}
		if analysis.Emotions.Primary != "calm" {
			t.Errorf("Analyze(%q) primary emotion = %q, want calm", text, analysis.Emotions.Primary)
		}
	}
}

func TestAnalyzeStressedTranscript(t *testing.T) {
	scorer := NewScorer()

	score, analysis, err := scorer.Analyze("I'm feeling stressed and overwhelmed with deadlines")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if score.Stress < 6.5 {
		t.Errorf("Expected stress >= 6.5 for a clearly stressed transcript, got %v", score.Stress)
	}
	if score.Happiness > 5.0 {
		t.Errorf("Expected happiness <= 5.0 for a clearly stressed transcript, got %v", score.Happiness)
	}
	if analysis.Sentiment.Label != "negative" {
		t.Errorf("Expected negative sentiment, got %q", analysis.Sentiment.Label)
	}
	if analysis.Emotions.Primary != "fear" {
		t.Errorf("Expected fear as primary emotion, got %q", analysis.Emotions.Primary)
	}

	wantKeywords := []string{"stressed", "overwhelmed", "deadlines"}
	if !reflect.DeepEqual(analysis.Keywords, wantKeywords) {
		t.Errorf("Keywords = %v, want %v", analysis.Keywords, wantKeywords)
	}
}

func TestAnalyzeHappyTranscript(t *testing.T) {
	scorer := NewScorer()

	score, analysis, err := scorer.Analyze("I'm so happy and grateful, had a great productive day")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if score.Happiness < 7.0 {
		t.Errorf("Expected happiness >= 7.0 for a clearly happy transcript, got %v", score.Happiness)
	}
	if score.Stress > 5.0 {
		t.Errorf("Expected stress <= 5.0 for a clearly happy transcript, got %v", score.Stress)
	}
	if analysis.Sentiment.Label != "positive" {
		t.Errorf("Expected positive sentiment, got %q", analysis.Sentiment.Label)
	}
	if analysis.Emotions.Primary != "joy" {
		t.Errorf("Expected joy as primary emotion, got %q", analysis.Emotions.Primary)
	}
}

func TestAnalyzeInvalidUTF8(t *testing.T) {
	scorer := NewScorer()

	_, _, err := scorer.Analyze("valid prefix \xff\xfe")
	if err != ErrInvalidInput {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	if _, err := scorer.AnalyzeBasic("\xc3\x28"); err != ErrInvalidInput {
		t.Errorf("Expected ErrInvalidInput from AnalyzeBasic, got %v", err)
	}
}

func TestAnalyzeBasicBounds(t *testing.T) {
	scorer := NewScorerWithRand(rand.New(rand.NewSource(42)))

	texts := []string{
		"stressed overwhelmed panic deadline",
		"happy grateful wonderful",
		"an uneventful day",
		"",
	}

	for _, text := range texts {
		score, err := scorer.AnalyzeBasic(text)
		if err != nil {
			t.Fatalf("AnalyzeBasic(%q) returned error: %v", text, err)
		}
		for i, v := range allDimensions(score) {
			if v < 0 || v > 10 {
				t.Errorf("AnalyzeBasic(%q) dimension %d = %v, outside [0,10]", text, i, v)
			}
		}
	}
}

func TestAnalyzeBasicDirection(t *testing.T) {
	// Jitter is bounded by 0.5, so strongly signalled text still separates
	scorer := NewScorerWithRand(rand.New(rand.NewSource(1)))

	stressed, err := scorer.AnalyzeBasic("stressed overwhelmed panic deadline burnout")
	if err != nil {
		t.Fatalf("AnalyzeBasic returned error: %v", err)
	}
	if stressed.Stress <= 5.5 {
		t.Errorf("Expected elevated stress from stacked stress keywords, got %v", stressed.Stress)
	}

	happy, err := scorer.AnalyzeBasic("happy joyful grateful wonderful amazing")
	if err != nil {
		t.Fatalf("AnalyzeBasic returned error: %v", err)
	}
	if happy.Happiness <= 5.5 {
		t.Errorf("Expected elevated happiness from stacked happiness keywords, got %v", happy.Happiness)
	}
}

func TestSentimentClampAndConfidence(t *testing.T) {
	// Seven positive hits: score clamps to 5, confidence 0.7
	sig := ExtractSignals("happy great good wonderful amazing fantastic excellent")
	sent := scoreSentiment(sig)

	if sent.Score != 5 {
		t.Errorf("Expected sentiment score clamped to 5, got %v", sent.Score)
	}
	if sent.Label != "positive" {
		t.Errorf("Expected positive label, got %q", sent.Label)
	}
	if math.Abs(sent.Confidence-0.7) > 1e-9 {
		t.Errorf("Expected confidence 0.7, got %v", sent.Confidence)
	}
}

func TestEmotionDeviationDefaults(t *testing.T) {
	if got := emotionDeviation(nil); got != 0.5 {
		t.Errorf("Expected 0.5 deviation for no emotions, got %v", got)
	}

	scores := []models.EmotionScore{{Emotion: "joy", Score: 1.0}}
	if got := emotionDeviation(scores); got != 0.5 {
		t.Errorf("Expected 0.5 deviation for a single dominant emotion, got %v", got)
	}
}
