package textscore

// Curated word lists backing the signal extractor. Matching is whole-word
// over case-folded text, so every entry here is a single lowercase token.
// The tier weights and thresholds are empirically chosen and intentionally
// kept as-is; treat them as calibration constants.

// Tier weights applied to category hits.
const (
	tierHighWeight   = 2.0
	tierMediumWeight = 1.0
	tierLowWeight    = -1.0

	// Energy uses a symmetric high/low split.
	energyLowWeight = -2.0
)

var stressHighWords = []string{
	"stressed", "overwhelmed", "anxious", "panic", "panicked", "frantic",
	"pressure", "deadline", "deadlines", "burnout", "dread", "overloaded",
	"swamped", "breaking",
}

var stressMediumWords = []string{
	"busy", "worried", "tense", "rushed", "nervous", "uneasy", "hectic",
	"restless", "strained",
}

var stressLowWords = []string{
	"calm", "relaxed", "peaceful", "unhurried", "serene", "rested",
	"easygoing", "tranquil",
}

var happinessHighWords = []string{
	"happy", "joyful", "thrilled", "delighted", "ecstatic", "grateful",
	"wonderful", "amazing", "fantastic", "great", "excellent", "love",
	"loved", "awesome",
}

var happinessMediumWords = []string{
	"good", "nice", "pleasant", "content", "satisfied", "cheerful", "glad",
	"fine", "okay",
}

var happinessLowWords = []string{
	"sad", "unhappy", "miserable", "depressed", "gloomy", "down", "upset",
	"terrible", "awful", "horrible",
}

var energyHighWords = []string{
	"energized", "energetic", "active", "vibrant", "alive", "motivated",
	"pumped", "refreshed", "productive", "invigorated",
}

var energyLowWords = []string{
	"tired", "exhausted", "drained", "fatigued", "sluggish", "weary",
	"sleepy", "lethargic", "spent",
}

var clarityHighWords = []string{
	"clear", "focused", "organized", "decisive", "sharp", "certain",
	"structured", "deliberate",
}

var clarityLowWords = []string{
	"confused", "foggy", "scattered", "unclear", "distracted", "muddled",
	"unsure", "hazy",
}

var stabilityHighWords = []string{
	"steady", "balanced", "grounded", "stable", "composed", "centered",
	"settled",
}

var stabilityLowWords = []string{
	"volatile", "erratic", "moody", "unstable", "shaky", "fragile",
	"reactive",
}

// Emotion taxonomy. Declaration order here is the tiebreak order for
// primary/secondary emotion selection.
var emotionTaxonomy = []struct {
	name  string
	words []string
}{
	{"joy", []string{
		"happy", "joy", "joyful", "delighted", "grateful", "cheerful",
		"excited", "thrilled", "wonderful", "great", "love", "loved",
	}},
	{"sadness", []string{
		"sad", "unhappy", "miserable", "grief", "crying", "lonely",
		"heartbroken", "down", "gloomy", "hopeless",
	}},
	{"anger", []string{
		"angry", "mad", "furious", "irritated", "annoyed", "frustrated",
		"resentful", "rage", "livid",
	}},
	{"fear", []string{
		"afraid", "scared", "fearful", "anxious", "worried", "terrified",
		"nervous", "dread", "panic", "overwhelmed",
	}},
	{"surprise", []string{
		"surprised", "shocked", "astonished", "unexpected", "stunned",
		"amazed", "startled",
	}},
	{"disgust", []string{
		"disgusted", "disgusting", "gross", "revolted", "repulsed",
		"sickened",
	}},
	{"anticipation", []string{
		"anticipation", "eager", "hopeful", "expectant", "curious",
		"anticipating", "excited", "ready",
	}},
	{"trust", []string{
		"trust", "confident", "secure", "assured", "supported", "reliable",
		"safe",
	}},
	{"calm", []string{
		"calm", "peaceful", "relaxed", "serene", "tranquil", "settled",
		"steady", "still",
	}},
	{"confused", []string{
		"confused", "uncertain", "unsure", "puzzled", "perplexed", "lost",
		"muddled",
	}},
}

// Coarse sentiment lists used by both the sentiment pass and the cognitive
// negativity signal.
var sentimentPositiveWords = []string{
	"happy", "great", "good", "wonderful", "amazing", "fantastic",
	"excellent", "love", "loved", "grateful", "productive", "proud",
	"success", "successful", "enjoyed", "fun", "awesome", "pleased",
	"excited", "hopeful", "win", "better",
}

var sentimentNegativeWords = []string{
	"bad", "terrible", "awful", "horrible", "sad", "angry", "stressed",
	"overwhelmed", "anxious", "worried", "tired", "frustrated", "failed",
	"failure", "hate", "miserable", "upset", "exhausted", "lonely",
	"worse", "hopeless",
}

// Word pairs for the three tone axes.
var toneEnergeticWords = []string{
	"energized", "energetic", "active", "alive", "vibrant", "motivated",
	"pumped", "refreshed",
}

var toneFatiguedWords = []string{
	"tired", "exhausted", "drained", "sleepy", "weary", "fatigued",
	"sluggish",
}

var toneTenseWords = []string{
	"stressed", "tense", "anxious", "overwhelmed", "pressure", "panic",
	"nervous", "frantic", "worried",
}

var toneRelaxedWords = []string{
	"relaxed", "calm", "peaceful", "serene", "rested", "comfortable",
	"tranquil", "easy",
}

// Hedge words feeding the uncertainty signal.
var hedgeWords = []string{
	"maybe", "perhaps", "might", "possibly", "probably", "guess",
	"somewhat", "kinda", "sorta", "likely", "unsure", "unclear",
}

// Connectives feeding the complexity signal.
var connectiveWords = []string{
	"however", "therefore", "moreover", "furthermore", "although",
	"nevertheless", "consequently", "meanwhile", "whereas", "because",
}

// Stopwords excluded from keyword extraction.
var keywordStopwords = map[string]bool{
	"this": true, "that": true, "with": true, "have": true, "been": true,
	"were": true, "they": true, "them": true, "then": true, "than": true,
	"from": true, "just": true, "like": true, "about": true, "really": true,
	"very": true, "today": true, "because": true, "would": true,
	"could": true, "should": true, "there": true, "their": true,
	"what": true, "when": true, "where": true, "some": true, "much": true,
	"feel": true, "feeling": true, "felt": true,
}
