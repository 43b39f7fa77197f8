package textscore

import (
	"errors"
	"math"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// ErrInvalidInput is returned when the transcript is not valid text.
// An empty string is valid input and yields the neutral profile.
var ErrInvalidInput = errors.New("textscore: transcript is not valid text")

// Weights for the overall score. They sum to 1 and are empirically chosen;
// a future calibration pass may tune them, so keep them in one place.
const (
	weightHappiness = 0.30
	weightStress    = 0.25
	weightClarity   = 0.20
	weightEnergy    = 0.15
	weightStability = 0.10
)

const (
	scoreMin      = 0.0
	scoreMax      = 10.0
	scoreMidpoint = 5.0

	// Caps for the ranked emotion list and extracted keywords.
	maxRankedEmotions = 5
	maxKeywords       = 5

	// Sentiment score bounds and confidence normalization.
	sentimentScoreBound   = 5.0
	sentimentConfDivisor  = 10.0
	sentimentNeutralLabel = "neutral"

	// Jitter amplitude for the basic fallback scorer.
	basicJitterAmplitude = 0.5
	// Net category signal scale for the basic fallback scorer.
	basicSignalScale = 0.8
)

// Scorer synthesizes MoodScores from transcripts. The rich pipeline is
// fully deterministic; only the basic fallback mode draws from the
// injectable randomness source, so tests can seed it.
type Scorer struct {
	rng *rand.Rand
}

// NewScorer returns a scorer with time-seeded jitter for the fallback mode.
func NewScorer() *Scorer {
	return NewScorerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewScorerWithRand returns a scorer using the given randomness source.
func NewScorerWithRand(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Analyze runs the rich-signal pipeline: lexicon extraction, cognitive/tone
// estimation, then score synthesis. Identical input always yields identical
// output.
func (s *Scorer) Analyze(text string) (models.MoodScore, models.TextAnalysis, error) {
	if !utf8.ValidString(text) {
		return models.MoodScore{}, models.TextAnalysis{}, ErrInvalidInput
	}

	sig := ExtractSignals(text)
	if sig.TotalTokens == 0 {
		return neutralScore(), neutralAnalysis(), nil
	}

	cog, tone := EstimateCognitiveAndTone(text)
	sentiment := scoreSentiment(sig)
	ranked := EmotionScores(sig)

	joy := EmotionScore(sig, "joy")
	anticipation := EmotionScore(sig, "anticipation")

	stress := round1(clampScore(scoreMidpoint - sentiment.Score*0.5 + tone.Tension*5))
	happiness := round1(clampScore(scoreMidpoint + sentiment.Score*0.5 + joy*5))
	clarity := round1(clampScore(cog.Clarity * 10))
	energy := round1(clampScore(scoreMidpoint + tone.Energy*3 + anticipation*2))
	stability := round1(clampScore(scoreMax - emotionDeviation(ranked)*10))

	score := models.MoodScore{
		Stress:             stress,
		Happiness:          happiness,
		Clarity:            clarity,
		Energy:             energy,
		EmotionalStability: stability,
	}
	score.Overall = overallWeighted(score)

	analysis := models.TextAnalysis{
		Sentiment: sentiment,
		Emotions:  rankEmotions(ranked),
		Tone:      tone,
		Cognitive: cog,
		Keywords:  Keywords(text, maxKeywords),
	}

	return score, analysis, nil
}

// AnalyzeBasic is the coarse fallback used when the rich pipeline is
// unavailable: scores come straight from tier-weighted keyword hits plus a
// small jitter for realism, still clamped and rounded like the rich mode.
func (s *Scorer) AnalyzeBasic(text string) (models.MoodScore, error) {
	if !utf8.ValidString(text) {
		return models.MoodScore{}, ErrInvalidInput
	}

	sig := ExtractSignals(text)
	if sig.TotalTokens == 0 {
		score := neutralScore()
		score.Overall = overallBasic(score)
		return score, nil
	}

	fromNet := func(cat Category) float64 {
		return round1(clampScore(scoreMidpoint + sig.CategoryScores[cat]*basicSignalScale + s.jitter()))
	}

	score := models.MoodScore{
		Stress:             fromNet(CategoryStress),
		Happiness:          fromNet(CategoryHappiness),
		Clarity:            fromNet(CategoryClarity),
		Energy:             fromNet(CategoryEnergy),
		EmotionalStability: fromNet(CategoryStability),
	}
	score.Overall = overallBasic(score)

	return score, nil
}

func (s *Scorer) jitter() float64 {
	if s.rng == nil {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * basicJitterAmplitude
}

// scoreSentiment runs the coarse lexical sentiment pass, returning a signed
// score in [-5,5] with a label and a hit-volume confidence.
func scoreSentiment(sig Signals) models.Sentiment {
	pos, neg := sig.PositiveHits, sig.NegativeHits
	raw := float64(pos - neg)
	score := clampRange(raw, -sentimentScoreBound, sentimentScoreBound)

	label := sentimentNeutralLabel
	switch {
	case score > 0:
		label = "positive"
	case score < 0:
		label = "negative"
	}

	return models.Sentiment{
		Score:      score,
		Label:      label,
		Confidence: clamp01(float64(pos+neg) / sentimentConfDivisor),
	}
}

// rankEmotions caps the ranked list and picks primary/secondary.
func rankEmotions(ranked []models.EmotionScore) models.Emotions {
	emotions := models.Emotions{All: []models.EmotionScore{}}
	if len(ranked) == 0 {
		emotions.Primary = "calm"
		return emotions
	}

	if len(ranked) > maxRankedEmotions {
		ranked = ranked[:maxRankedEmotions]
	}
	emotions.All = ranked
	emotions.Primary = ranked[0].Emotion
	if len(ranked) > 1 {
		emotions.Secondary = ranked[1].Emotion
	}
	return emotions
}

// emotionDeviation is the mean absolute deviation of the normalized emotion
// scores from 0.5. With no emotion hits it defaults to the neutral 0.5 so
// stability lands on the midpoint.
func emotionDeviation(ranked []models.EmotionScore) float64 {
	if len(ranked) == 0 {
		return 0.5
	}
	var sum float64
	for _, es := range ranked {
		sum += math.Abs(es.Score - 0.5)
	}
	return sum / float64(len(ranked))
}

// overallWeighted is the primary overall invariant: a fixed-weight blend of
// the other five dimensions with stress inverted.
func overallWeighted(s models.MoodScore) float64 {
	return round1(clampScore(
		weightHappiness*s.Happiness +
			weightStress*(scoreMax-s.Stress) +
			weightClarity*s.Clarity +
			weightEnergy*s.Energy +
			weightStability*s.EmotionalStability))
}

// overallBasic is the fallback overall: the unweighted mean of (11 - stress)
// and the other four dimensions.
func overallBasic(s models.MoodScore) float64 {
	return round1(clampScore(
		((11 - s.Stress) + s.Happiness + s.Clarity + s.Energy + s.EmotionalStability) / 5))
}

func neutralScore() models.MoodScore {
	score := models.MoodScore{
		Stress:             scoreMidpoint,
		Happiness:          scoreMidpoint,
		Clarity:            scoreMidpoint,
		Energy:             scoreMidpoint,
		EmotionalStability: scoreMidpoint,
	}
	score.Overall = overallWeighted(score)
	return score
}

func neutralAnalysis() models.TextAnalysis {
	return models.TextAnalysis{
		Sentiment: models.Sentiment{Label: sentimentNeutralLabel},
		Emotions:  models.Emotions{Primary: "calm", All: []models.EmotionScore{}},
		Tone:      models.Tone{Energy: 0.5, Valence: 0.5, Tension: 0.5},
		Cognitive: models.Cognitive{Clarity: 0.5, Focus: 0.5, CognitiveLoad: 0.5},
		Keywords:  []string{},
	}
}

// clampScore bounds a mood dimension to [0,10]. Non-finite intermediates
// collapse to the neutral midpoint.
func clampScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return scoreMidpoint
	}
	return clampRange(v, scoreMin, scoreMax)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 bounds a unit-interval signal, defaulting non-finite values to
// the 0.5 midpoint.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.5
	}
	return clampRange(v, 0, 1)
}

// round1 rounds to one decimal, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
