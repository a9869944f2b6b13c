package analyzer

import "strings"

// Connective words that make a natural lead-in for an inserted phrase.
var connectives = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true, "on": true,
	"at": true, "by": true, "for": true, "with": true, "to": true,
}

// Sentences shorter than this (trimmed) are never insertion targets.
const minInsertableSentenceLen = 10

// InsertKeyword splices phrase into text at a sentence-internal position
// that reads as grammatically plausible, without any grammar model.
//
// The text is segmented into alternating sentence bodies and trailing
// delimiters; each body of at least 10 characters is scored (10 points per
// phrase word appearing in the sentence, +5 for sitting in the middle 60%
// of the text) and the highest-scoring sentence wins, earliest first on
// ties. The phrase lands near the 30% word mark, nudged to just after a
// nearby connective when one is in reach. Delimiters are never touched.
//
// InsertKeyword is total: text with no insertable sentence is returned
// unchanged.
func InsertKeyword(text, phrase string) string {
	segments := segmentSentences(text)

	bestIndex := -1
	bestScore := 0
	firstCandidate := -1

	// Even indices are sentence bodies, odd indices their delimiters.
	for i := 0; i < len(segments); i += 2 {
		sentence := segments[i]
		if len(strings.TrimSpace(sentence)) < minInsertableSentenceLen {
			continue
		}
		if firstCandidate == -1 {
			firstCandidate = i
		}

		score := 0
		lower := strings.ToLower(sentence)
		for _, word := range strings.Split(strings.ToLower(phrase), " ") {
			if word != "" && strings.Contains(lower, word) {
				score += 10
			}
		}

		position := float64(i) / float64(len(segments))
		if position > 0.2 && position < 0.8 {
			score += 5
		}

		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex == -1 {
		bestIndex = firstCandidate
	}
	if bestIndex == -1 {
		return text
	}

	segments[bestIndex] = spliceIntoSentence(segments[bestIndex], phrase)
	return strings.Join(segments, "")
}

// spliceIntoSentence inserts phrase as a standalone token near the 30% word
// mark, preferring the slot right after a connective within the next two
// words.
func spliceIntoSentence(sentence, phrase string) string {
	words := strings.Split(sentence, " ")

	insertPos := len(words) * 3 / 10
	limit := insertPos + 3
	if limit > len(words)-1 {
		limit = len(words) - 1
	}
	for i := insertPos; i < limit; i++ {
		if connectives[stripNonWord(words[i])] {
			insertPos = i + 1
			break
		}
	}

	rebuilt := make([]string, 0, len(words)+1)
	rebuilt = append(rebuilt, words[:insertPos]...)
	rebuilt = append(rebuilt, phrase)
	rebuilt = append(rebuilt, words[insertPos:]...)
	return strings.Join(rebuilt, " ")
}

// segmentSentences splits text into an alternating sequence of sentence
// bodies and their trailing delimiters (". ", "! ", "? "), discarding
// fragments that are empty after trimming. The segments rejoin with
// strings.Join(segments, "") to reproduce the original text.
func segmentSentences(text string) []string {
	var segments []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if (text[i] == '.' || text[i] == '!' || text[i] == '?') && text[i+1] == ' ' {
			if body := text[start:i]; strings.TrimSpace(body) != "" {
				segments = append(segments, body)
			}
			segments = append(segments, text[i:i+2])
			start = i + 2
			i++
		}
	}
	if tail := text[start:]; strings.TrimSpace(tail) != "" {
		segments = append(segments, tail)
	}
	return segments
}

// stripNonWord lower-cases w and removes everything outside [a-z0-9_].
func stripNonWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
