package analyzer

import "github.com/zombar/seoanalyzer/internal/models"

// GenerateRecommendations evaluates the fixed rule list in order and
// appends one recommendation per rule that fires. The output order is the
// rule order; rules are independent and never deduplicated.
func GenerateRecommendations(seoScore, wordCount int, keywords []models.Keyword) []models.Recommendation {
	recommendations := []models.Recommendation{}

	if seoScore < 70 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "improvement",
			Title:       "Improve overall SEO score",
			Description: "Consider adding more relevant keywords and improving content structure",
		})
	}

	if wordCount < 150 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "content",
			Title:       "Increase content length",
			Description: "Longer content tends to perform better in search results. Aim for at least 300 words.",
		})
	}

	if len(keywords) < 3 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "keywords",
			Title:       "Add more targeted keywords",
			Description: "Include more specific keywords related to your topic to improve search visibility",
		})
	}

	return recommendations
}
