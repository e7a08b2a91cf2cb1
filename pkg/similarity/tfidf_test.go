package similarity

import (
	"math"
	"testing"
)

func TestCosineIdenticalDocuments(t *testing.T) {
	text := "golang kubernetes docker postgres microservices"

	score := Cosine(text, text)

	if math.Abs(score-1.0) > 1e-9 {
		t.Errorf("Expected similarity 1.0 for identical documents, got %f", score)
	}
}

func TestCosineDisjointDocuments(t *testing.T) {
	score := Cosine("golang kubernetes docker", "gardening cooking painting")

	if score != 0.0 {
		t.Errorf("Expected similarity 0.0 for disjoint documents, got %f", score)
	}
}

func TestCosineEmptyInput(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		jd     string
	}{
		{"empty resume", "", "software engineer"},
		{"empty jd", "software engineer", ""},
		{"both empty", "", ""},
		{"whitespace only", "   ", "\n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Cosine(tt.resume, tt.jd)
			if score != 0.0 {
				t.Errorf("Expected 0.0, got %f", score)
			}
		})
	}
}

func TestCosinePartialOverlap(t *testing.T) {
	resume := "golang docker postgres experience building services"
	jd := "golang kubernetes experience required"

	score := Cosine(resume, jd)

	if score <= 0.0 || score >= 1.0 {
		t.Errorf("Expected score strictly between 0 and 1 for partial overlap, got %f", score)
	}
}

func TestCosineRange(t *testing.T) {
	pairs := [][2]string{
		{"a b c", "c d e"},
		{"software engineer with python", "python developer wanted"},
		{"one two three", "one two three four five"},
	}

	for _, pair := range pairs {
		score := Cosine(pair[0], pair[1])
		if score < 0.0 || score > 1.0 {
			t.Errorf("Score out of range for %q vs %q: %f", pair[0], pair[1], score)
		}
	}
}

func TestCosineStopWordsIgnored(t *testing.T) {
	// Documents sharing only stop words have nothing in common after
	// cleaning.
	score := Cosine("the and of kubernetes", "the and of gardening")

	if score != 0.0 {
		t.Errorf("Expected 0.0 when only stop words overlap, got %f", score)
	}
}
