package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Content types accepted by the analyze operation. The content type only
// affects the prompt sent to the language-analysis provider, not scoring.
const (
	ContentTypeBlogPost           = "blog_post"
	ContentTypeSocialMedia        = "social_media"
	ContentTypeNewsletter         = "newsletter"
	ContentTypeProductDescription = "product_description"
)

// ValidContentType reports whether ct is one of the accepted content types.
func ValidContentType(ct string) bool {
	switch ct {
	case ContentTypeBlogPost, ContentTypeSocialMedia, ContentTypeNewsletter, ContentTypeProductDescription:
		return true
	}
	return false
}

// Analysis is the persisted unit of work: one provider round trip plus the
// derived metrics, recommendations, and ranked keywords. OriginalText is
// immutable after creation; OptimizedText is replaced wholesale on each
// keyword insertion. Score fields are computed once, against OriginalText.
type Analysis struct {
	ID               int64            `json:"id"`
	OriginalText     string           `json:"originalText"`
	ContentType      string           `json:"contentType"`
	SEOScore         int              `json:"seoScore"`
	ReadabilityScore string           `json:"readabilityScore"`
	KeywordDensity   float64          `json:"keywordDensity"`
	WordCount        int              `json:"wordCount"`
	Recommendations  []Recommendation `json:"recommendations"`
	Keywords         []Keyword        `json:"keywords"`
	OptimizedText    string           `json:"optimizedText"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Keyword is a ranked phrase candidate after normalization.
type Keyword struct {
	Text           string  `json:"text"`
	Difficulty     string  `json:"difficulty"` // Low, Medium, High
	Volume         string  `json:"volume"`
	Context        string  `json:"context"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// Recommendation is a user-facing suggestion derived from the metrics.
type Recommendation struct {
	Type        string `json:"type"` // content, keywords, improvement
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CandidateSet is the raw provider payload: three optional candidate lists.
// The zero value is a valid, empty result.
type CandidateSet struct {
	Keywords []Candidate `json:"keywords"`
	Entities []Candidate `json:"entities"`
	Topics   []Candidate `json:"topics"`
}

// Candidate is a single provider-proposed phrase. Difficulty and
// SearchVolume are optional hints; Type is set for entities only.
type Candidate struct {
	Text           string     `json:"text"`
	RelevanceScore float64    `json:"relevanceScore"`
	Difficulty     string     `json:"difficulty,omitempty"`
	SearchVolume   FlexString `json:"searchVolume,omitempty"`
	Type           string     `json:"type,omitempty"`
}

// FlexString decodes a JSON value that may arrive as either a string or a
// number. Providers are inconsistent about searchVolume ("high" vs 15000).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	return fmt.Errorf("searchVolume is neither string nor number: %s", data)
}

func (f FlexString) String() string {
	return string(f)
}
