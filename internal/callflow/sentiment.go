package callflow

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalLiteral matches numbers written with a decimal point, such as 0.8, -0.25 or .5
var decimalLiteral = regexp.MustCompile(`[-+]?(?:\d+\.\d+|\.\d+)`)

var sentimentKeywords = []struct {
	word  string
	score float64
}{
	{word: "positive", score: 0.7},
	{word: "negative", score: -0.3},
	{word: "neutral", score: 0.0},
}

// ExtractSentiment turns free-text sentiment analysis into a score in [-1, 1].
//
// This is a lossy heuristic, not sentiment analysis: the first decimal literal within
// [-1, 1] wins; otherwise the first matching keyword ("positive", "negative", "neutral")
// decides; otherwise the score is 0. It never fails.
func ExtractSentiment(text string) float64 {
	for _, literal := range decimalLiteral.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			continue
		}
		if v >= -1 && v <= 1 {
			return clamp(v)
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range sentimentKeywords {
		if strings.Contains(lower, kw.word) {
			return clamp(kw.score)
		}
	}
	return 0.0
}

// NormalizedSentiment maps a score from [-1, 1] onto [0, 1] for display
func NormalizedSentiment(score float64) float64 {
	return (clamp(score) + 1) / 2
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
