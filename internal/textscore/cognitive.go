package textscore

import (
	"strings"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// Normalization divisors for the sentence-shape heuristics.
const (
	complexityDivisor  = 10.0
	uncertaintyDivisor = 5.0

	// Sentences longer than this many whitespace-delimited words count
	// toward the complexity signal.
	longSentenceWords = 20

	// Minimum denominator for the tone ratios so a couple of hits in a
	// short transcript do not saturate the axis.
	toneMinDenominator = 5.0
)

// EstimateCognitiveAndTone derives the secondary cognitive and tone signals
// from a transcript. Deterministic and side-effect free.
func EstimateCognitiveAndTone(text string) (models.Cognitive, models.Tone) {
	counts := tokenCounts(Tokenize(text))

	complexity := clamp01(
		(float64(countHits(counts, connectiveWords)) + float64(countLongSentences(text))) / complexityDivisor)
	uncertainty := clamp01(
		float64(countHits(counts, hedgeWords)) / uncertaintyDivisor)

	pos := countHits(counts, sentimentPositiveWords)
	neg := countHits(counts, sentimentNegativeWords)
	negativity := clamp01(toneRatio(neg, pos))

	cog := models.Cognitive{
		Clarity:       clamp01(1 - (complexity+uncertainty)/2),
		Focus:         clamp01(1 - uncertainty),
		CognitiveLoad: clamp01((complexity + uncertainty + negativity) / 3),
	}

	energetic := countHits(counts, toneEnergeticWords)
	fatigued := countHits(counts, toneFatiguedWords)
	tense := countHits(counts, toneTenseWords)
	relaxed := countHits(counts, toneRelaxedWords)

	tone := models.Tone{
		Energy:  clamp01(toneRatio(energetic, fatigued)),
		Valence: clamp01((toneRatio(pos, neg) + 1) / 2),
		Tension: clamp01(toneRatio(tense, relaxed)),
	}

	return cog, tone
}

// toneRatio is the shared signed-ratio shape for the tone axes:
// (hits for − hits against) / max(total hits, 5), landing in [-1,1].
func toneRatio(forHits, againstHits int) float64 {
	denom := float64(forHits + againstHits)
	if denom < toneMinDenominator {
		denom = toneMinDenominator
	}
	return float64(forHits-againstHits) / denom
}

func countLongSentences(text string) int {
	long := 0
	for _, sentence := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if len(strings.Fields(sentence)) > longSentenceWords {
			long++
		}
	}
	return long
}
