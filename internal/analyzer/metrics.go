package analyzer

import (
	"errors"
	"regexp"
	"strings"

	"github.com/zombar/seoanalyzer/internal/models"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	errEmptyPhrase  = errors.New("empty keyword phrase")
)

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(strings.TrimSpace(text)))
}

// countSentences counts non-empty sentences, splitting on runs of
// terminating punctuation. Text with no terminator counts as one sentence
// so averages never divide by zero.
func countSentences(text string) int {
	count := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// CalculateSEOScore derives the 0-100 score from content length, keyword
// coverage, and sentence structure. Base 50, plus a word-count bonus
// (15/10/5 at >300/>150/>50 words), a keyword-count bonus (15/10 at >5/>2),
// and +10 when the average sentence length sits strictly between 10 and 20
// words. Clamped to [0,100].
func CalculateSEOScore(text string, keywords []models.Keyword, wordCount int) int {
	score := 50

	switch {
	case wordCount > 300:
		score += 15
	case wordCount > 150:
		score += 10
	case wordCount > 50:
		score += 5
	}

	switch {
	case len(keywords) > 5:
		score += 15
	case len(keywords) > 2:
		score += 10
	}

	avgSentenceLength := float64(wordCount) / float64(countSentences(text))
	if avgSentenceLength > 10 && avgSentenceLength < 20 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// CalculateKeywordDensity sums case-insensitive whole-phrase occurrences of
// every keyword in text, divided by the word count, as a percentage.
// Internal whitespace in multi-word phrases matches any whitespace run.
// Empty keyword lists and empty texts score zero.
func CalculateKeywordDensity(text string, keywords []models.Keyword, wordCount int) float64 {
	if len(keywords) == 0 || wordCount == 0 {
		return 0
	}

	occurrences := 0
	for _, kw := range keywords {
		re, err := phrasePattern(kw.Text)
		if err != nil {
			continue
		}
		occurrences += len(re.FindAllString(text, -1))
	}

	return float64(occurrences) / float64(wordCount) * 100
}

// phrasePattern builds a word-boundary regexp for a keyword phrase. Each
// word is escaped so phrases containing regexp metacharacters match
// literally.
func phrasePattern(phrase string) (*regexp.Regexp, error) {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil, errEmptyPhrase
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.Compile(`(?i)\b` + strings.Join(escaped, `\s+`) + `\b`)
}

// ClassifyReadability buckets the text by average sentence length.
func ClassifyReadability(text string, wordCount int) string {
	avgSentenceLength := float64(wordCount) / float64(countSentences(text))

	switch {
	case avgSentenceLength < 15:
		return "Easy"
	case avgSentenceLength < 20:
		return "Good"
	case avgSentenceLength < 25:
		return "Fair"
	default:
		return "Difficult"
	}
}
