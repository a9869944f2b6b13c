package analyzer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zombar/seoanalyzer/internal/models"
)

// Per-category relevance floors and caps. These match the tuning of the
// production prompt and are deliberately not derived from anything.
const (
	keywordRelevanceFloor = 0.3
	entityRelevanceFloor  = 0.5
	topicRelevanceFloor   = 0.4

	keywordCap = 10
	entityCap  = 5
	topicCap   = 5
)

// Synthesized search volume multipliers, applied when the provider gives no
// searchVolume hint.
const (
	keywordVolumeScale = 15000
	entityVolumeScale  = 12000
	topicVolumeScale   = 10000
)

// NormalizeCandidates turns a raw provider payload into the ranked keyword
// list presented to the user. Each category is filtered by its relevance
// floor, truncated to its cap in provider order, and mapped to Keyword
// records; the merged list is then sorted by relevance descending with a
// stable sort so ties keep category order (keywords, entities, topics).
// A nil payload yields an empty list.
func NormalizeCandidates(set *models.CandidateSet) []models.Keyword {
	keywords := []models.Keyword{}
	if set == nil {
		return keywords
	}

	for _, c := range truncate(filterByRelevance(set.Keywords, keywordRelevanceFloor), keywordCap) {
		difficulty := c.Difficulty
		if difficulty == "" {
			difficulty = difficultyTier(c.RelevanceScore, 0.8, 0.6)
		}
		volume := c.SearchVolume.String()
		if volume == "" {
			volume = synthesizeVolume(c.RelevanceScore, keywordVolumeScale)
		}
		keywords = append(keywords, models.Keyword{
			Text:           strings.ToLower(c.Text),
			Difficulty:     titleCase(difficulty),
			Volume:         volume,
			Context:        "Keyword with " + relevancePercent(c.RelevanceScore) + "% relevance",
			RelevanceScore: c.RelevanceScore,
		})
	}

	for _, c := range truncate(filterByRelevance(set.Entities, entityRelevanceFloor), entityCap) {
		keywords = append(keywords, models.Keyword{
			Text:           strings.ToLower(c.Text),
			Difficulty:     difficultyTier(c.RelevanceScore, 0.8, 0.6),
			Volume:         synthesizeVolume(c.RelevanceScore, entityVolumeScale),
			Context:        "Entity (" + c.Type + ") with " + relevancePercent(c.RelevanceScore) + "% relevance",
			RelevanceScore: c.RelevanceScore,
		})
	}

	for _, c := range truncate(filterByRelevance(set.Topics, topicRelevanceFloor), topicCap) {
		keywords = append(keywords, models.Keyword{
			Text:           strings.ToLower(c.Text),
			Difficulty:     difficultyTier(c.RelevanceScore, 0.7, 0.5),
			Volume:         synthesizeVolume(c.RelevanceScore, topicVolumeScale),
			Context:        "Topic with " + relevancePercent(c.RelevanceScore) + "% relevance",
			RelevanceScore: c.RelevanceScore,
		})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].RelevanceScore > keywords[j].RelevanceScore
	})

	return keywords
}

// filterByRelevance keeps candidates strictly above the floor, preserving
// provider order.
func filterByRelevance(candidates []models.Candidate, floor float64) []models.Candidate {
	var kept []models.Candidate
	for _, c := range candidates {
		if c.RelevanceScore > floor {
			kept = append(kept, c)
		}
	}
	return kept
}

func truncate(candidates []models.Candidate, limit int) []models.Candidate {
	if len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}

// difficultyTier buckets a relevance score into High/Medium/Low using the
// category's thresholds.
func difficultyTier(score, high, medium float64) string {
	switch {
	case score > high:
		return "High"
	case score > medium:
		return "Medium"
	default:
		return "Low"
	}
}

// synthesizeVolume approximates search interest from relevance when the
// provider gives no hint.
func synthesizeVolume(score float64, scale int) string {
	return strconv.Itoa(int(score * float64(scale)))
}

func relevancePercent(score float64) string {
	return strconv.FormatFloat(score*100, 'f', 1, 64)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
