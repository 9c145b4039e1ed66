package suggest

import (
	"github.com/hbollon/go-edlib"
)

// Confidence represents the confidence level of a filename match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match represents the result of a fuzzy filename match.
type Match struct {
	Name       string     // The matched candidate name
	Score      float64    // Jaro-Winkler similarity score (0.0-1.0)
	Confidence Confidence // Confidence level based on score
}

// BestMatch finds the closest candidate to the target name.
// Uses Jaro-Winkler similarity, which favors shared prefixes (a good
// fit for filenames that differ only in suffix or extension).
// Returns the best match with confidence level based on score thresholds.
func BestMatch(target string, candidates []string) Match {
	if len(candidates) == 0 {
		return Match{Confidence: ConfidenceNone}
	}

	normalizedTarget := Normalize(target)

	best := Match{
		Score:      0,
		Confidence: ConfidenceNone,
	}

	for _, candidate := range candidates {
		// Calculate Jaro-Winkler similarity (returns value between 0 and 1)
		score := float64(edlib.JaroWinklerSimilarity(normalizedTarget, Normalize(candidate)))

		if score > best.Score {
			best.Name = candidate
			best.Score = score
		}
	}

	// Set confidence level based on score thresholds
	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Name = "" // Clear name for no-match case
	}

	return best
}
