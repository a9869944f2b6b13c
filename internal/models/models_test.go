package models

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"string value", `"high"`, "high"},
		{"integer value", `15000`, "15000"},
		{"float value", `1.5`, "1.5"},
		{"null leaves zero value", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, f.String())
			}
		})
	}
}

func TestFlexStringUnmarshalRejectsObjects(t *testing.T) {
	var f FlexString
	if err := json.Unmarshal([]byte(`{"a":1}`), &f); err == nil {
		t.Error("expected error for object value")
	}
}

func TestFlexStringInCandidate(t *testing.T) {
	raw := `{"text":"go","relevanceScore":0.9,"searchVolume":12000}`
	var c Candidate
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.SearchVolume.String() != "12000" {
		t.Errorf("expected numeric volume as string, got %q", c.SearchVolume.String())
	}
}

func TestValidContentType(t *testing.T) {
	valid := []string{ContentTypeBlogPost, ContentTypeSocialMedia, ContentTypeNewsletter, ContentTypeProductDescription}
	for _, ct := range valid {
		if !ValidContentType(ct) {
			t.Errorf("%q should be valid", ct)
		}
	}
	if ValidContentType("press_release") {
		t.Error("unknown content type should be invalid")
	}
	if ValidContentType("") {
		t.Error("empty content type should be invalid")
	}
}
