package analyzer

import (
	"strings"
	"testing"

	"github.com/zombar/seoanalyzer/internal/models"
)

func TestNormalizeCandidatesNil(t *testing.T) {
	keywords := NormalizeCandidates(nil)
	if keywords == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(keywords) != 0 {
		t.Errorf("expected no keywords, got %d", len(keywords))
	}
}

func TestNormalizeCandidatesRelevanceFloors(t *testing.T) {
	set := &models.CandidateSet{
		Keywords: []models.Candidate{
			{Text: "kept keyword", RelevanceScore: 0.31},
			{Text: "dropped keyword", RelevanceScore: 0.3},
		},
		Entities: []models.Candidate{
			{Text: "Kept Entity", RelevanceScore: 0.51, Type: "PERSON"},
			{Text: "Dropped Entity", RelevanceScore: 0.5, Type: "PERSON"},
		},
		Topics: []models.Candidate{
			{Text: "kept topic", RelevanceScore: 0.41},
			{Text: "dropped topic", RelevanceScore: 0.4},
		},
	}

	keywords := NormalizeCandidates(set)
	if len(keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %d", len(keywords))
	}
	for _, kw := range keywords {
		if strings.HasPrefix(kw.Text, "dropped") {
			t.Errorf("candidate at the floor should be dropped: %q", kw.Text)
		}
	}
}

func TestNormalizeCandidatesCaps(t *testing.T) {
	set := &models.CandidateSet{}
	for i := 0; i < 12; i++ {
		set.Keywords = append(set.Keywords, models.Candidate{Text: "kw", RelevanceScore: 0.9})
	}
	for i := 0; i < 7; i++ {
		set.Entities = append(set.Entities, models.Candidate{Text: "ent", RelevanceScore: 0.9})
		set.Topics = append(set.Topics, models.Candidate{Text: "top", RelevanceScore: 0.9})
	}

	keywords := NormalizeCandidates(set)
	if len(keywords) != 20 {
		t.Errorf("expected 10+5+5 keywords after caps, got %d", len(keywords))
	}
}

func TestNormalizeCandidatesSortStable(t *testing.T) {
	set := &models.CandidateSet{
		Keywords: []models.Candidate{
			{Text: "low keyword", RelevanceScore: 0.4},
			{Text: "tied keyword", RelevanceScore: 0.7},
		},
		Entities: []models.Candidate{
			{Text: "tied entity", RelevanceScore: 0.7, Type: "OTHER"},
		},
		Topics: []models.Candidate{
			{Text: "top topic", RelevanceScore: 0.9},
		},
	}

	keywords := NormalizeCandidates(set)
	got := make([]string, len(keywords))
	for i, kw := range keywords {
		got[i] = kw.Text
	}

	want := []string{"top topic", "tied keyword", "tied entity", "low keyword"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalizeCandidatesKeywordMapping(t *testing.T) {
	set := &models.CandidateSet{
		Keywords: []models.Candidate{
			{Text: "Machine Learning", RelevanceScore: 0.85},
		},
	}

	keywords := NormalizeCandidates(set)
	if len(keywords) != 1 {
		t.Fatalf("expected 1 keyword, got %d", len(keywords))
	}

	kw := keywords[0]
	if kw.Text != "machine learning" {
		t.Errorf("expected lowercased text, got %q", kw.Text)
	}
	if kw.Difficulty != "High" {
		t.Errorf("expected High difficulty for 0.85, got %q", kw.Difficulty)
	}
	if kw.Volume != "12750" {
		t.Errorf("expected synthesized volume 12750, got %q", kw.Volume)
	}
	if kw.Context != "Keyword with 85.0% relevance" {
		t.Errorf("unexpected context: %q", kw.Context)
	}
}

func TestNormalizeCandidatesProviderHintsWin(t *testing.T) {
	set := &models.CandidateSet{
		Keywords: []models.Candidate{
			{Text: "hinted", RelevanceScore: 0.9, Difficulty: "low", SearchVolume: "medium"},
		},
	}

	kw := NormalizeCandidates(set)[0]
	if kw.Difficulty != "Low" {
		t.Errorf("expected provider difficulty hint title-cased to Low, got %q", kw.Difficulty)
	}
	if kw.Volume != "medium" {
		t.Errorf("expected provider volume hint preserved, got %q", kw.Volume)
	}
}

func TestNormalizeCandidatesEntityMapping(t *testing.T) {
	set := &models.CandidateSet{
		Entities: []models.Candidate{
			{Text: "OpenAI", RelevanceScore: 0.7, Type: "ORGANIZATION"},
		},
	}

	kw := NormalizeCandidates(set)[0]
	if kw.Text != "openai" {
		t.Errorf("expected lowercased text, got %q", kw.Text)
	}
	if kw.Difficulty != "Medium" {
		t.Errorf("expected Medium difficulty for 0.7, got %q", kw.Difficulty)
	}
	if kw.Volume != "8400" {
		t.Errorf("expected volume 8400, got %q", kw.Volume)
	}
	if kw.Context != "Entity (ORGANIZATION) with 70.0% relevance" {
		t.Errorf("unexpected context: %q", kw.Context)
	}
}

func TestNormalizeCandidatesTopicTiers(t *testing.T) {
	tests := []struct {
		name       string
		relevance  float64
		difficulty string
	}{
		{"high above 0.7", 0.75, "High"},
		{"medium above 0.5", 0.55, "Medium"},
		{"low otherwise", 0.45, "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &models.CandidateSet{
				Topics: []models.Candidate{{Text: "t", RelevanceScore: tt.relevance}},
			}
			kw := NormalizeCandidates(set)[0]
			if kw.Difficulty != tt.difficulty {
				t.Errorf("expected %s for %.2f, got %s", tt.difficulty, tt.relevance, kw.Difficulty)
			}
		})
	}
}
