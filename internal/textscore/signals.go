// Package textscore derives normalized mood metrics from free-form journal
// text using lexicon-based signal extraction. Everything here is a pure
// function of its input: no caching, no shared state, safe for concurrent
// use across requests.
package textscore

import (
	"strings"
	"unicode"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// Category identifies one of the tiered mood lexicons.
type Category string

const (
	CategoryStress    Category = "stress"
	CategoryHappiness Category = "happiness"
	CategoryEnergy    Category = "energy"
	CategoryClarity   Category = "clarity"
	CategoryStability Category = "stability"
)

// Signals is the raw lexical measurement of a transcript before any score
// synthesis happens.
type Signals struct {
	// CategoryHits counts lexicon matches per category across all tiers.
	CategoryHits map[Category]int
	// CategoryScores holds the tier-weighted net signal per category.
	// Positive means "more of this category" (more stress, more happiness).
	CategoryScores map[Category]float64
	// EmotionHits counts taxonomy keyword matches per emotion.
	EmotionHits map[string]int
	// PositiveHits and NegativeHits are the coarse sentiment counts.
	PositiveHits int
	NegativeHits int
	// TotalTokens is the number of word tokens in the transcript.
	TotalTokens int
}

// Tokenize case-folds text and splits it into word tokens. Splitting on
// non-letter/non-digit runes gives whole-word matching for free: "mad"
// never matches inside "made".
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ExtractSignals scans the transcript against every lexicon and returns raw
// hit counts. Empty or whitespace-only text yields all-zero hits.
func ExtractSignals(text string) Signals {
	tokens := Tokenize(text)
	counts := tokenCounts(tokens)

	sig := Signals{
		CategoryHits:   make(map[Category]int),
		CategoryScores: make(map[Category]float64),
		EmotionHits:    make(map[string]int),
		TotalTokens:    len(tokens),
	}

	tally := func(cat Category, words []string, weight float64) {
		hits := countHits(counts, words)
		sig.CategoryHits[cat] += hits
		sig.CategoryScores[cat] += float64(hits) * weight
	}

	tally(CategoryStress, stressHighWords, tierHighWeight)
	tally(CategoryStress, stressMediumWords, tierMediumWeight)
	tally(CategoryStress, stressLowWords, tierLowWeight)

	tally(CategoryHappiness, happinessHighWords, tierHighWeight)
	tally(CategoryHappiness, happinessMediumWords, tierMediumWeight)
	tally(CategoryHappiness, happinessLowWords, tierLowWeight)

	tally(CategoryEnergy, energyHighWords, tierHighWeight)
	tally(CategoryEnergy, energyLowWords, energyLowWeight)

	tally(CategoryClarity, clarityHighWords, tierHighWeight)
	tally(CategoryClarity, clarityLowWords, tierLowWeight)

	tally(CategoryStability, stabilityHighWords, tierHighWeight)
	tally(CategoryStability, stabilityLowWords, tierLowWeight)

	for _, emo := range emotionTaxonomy {
		if hits := countHits(counts, emo.words); hits > 0 {
			sig.EmotionHits[emo.name] = hits
		}
	}

	sig.PositiveHits = countHits(counts, sentimentPositiveWords)
	sig.NegativeHits = countHits(counts, sentimentNegativeWords)

	return sig
}

// EmotionScores normalizes emotion hit counts into probability-like shares
// of all emotion hits, ordered score descending with ties broken by
// taxonomy declaration order.
func EmotionScores(sig Signals) []models.EmotionScore {
	total := 0
	for _, hits := range sig.EmotionHits {
		total += hits
	}
	if total == 0 {
		return nil
	}

	// Walking the taxonomy in declaration order makes the sort below
	// stable with respect to the tiebreak rule.
	scores := make([]models.EmotionScore, 0, len(sig.EmotionHits))
	for _, emo := range emotionTaxonomy {
		if hits, ok := sig.EmotionHits[emo.name]; ok {
			scores = append(scores, models.EmotionScore{
				Emotion: emo.name,
				Score:   float64(hits) / float64(total),
			})
		}
	}

	// Insertion-stable sort by score descending.
	for i := 1; i < len(scores); i++ {
		for j := i; j > 0 && scores[j].Score > scores[j-1].Score; j-- {
			scores[j], scores[j-1] = scores[j-1], scores[j]
		}
	}

	return scores
}

// EmotionScore returns the normalized share for a single emotion, zero when
// the emotion was not seen.
func EmotionScore(sig Signals, emotion string) float64 {
	for _, es := range EmotionScores(sig) {
		if es.Emotion == emotion {
			return es.Score
		}
	}
	return 0
}

// Keywords extracts up to max salient terms in order of appearance:
// deduplicated tokens of four or more letters that are not stopwords.
func Keywords(text string, max int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range Tokenize(text) {
		if len(tok) < 4 || keywordStopwords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
		if len(out) == max {
			break
		}
	}
	return out
}

func tokenCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func countHits(counts map[string]int, words []string) int {
	hits := 0
	for _, w := range words {
		hits += counts[w]
	}
	return hits
}
