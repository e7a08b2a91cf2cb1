// Package similarity computes TF-IDF cosine similarity between a resume
// and a job description over a two-document corpus with English stop words
// removed.
package similarity

import (
	"math"
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/floats"
)

//nolint:gochecknoglobals // Tokenizer constant
var wordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#.]*`)

// Cosine computes the TF-IDF cosine similarity of two texts in [0,1].
// Returns 0.0 when either text is empty or shares no vocabulary with the
// other.
func Cosine(resumeText, jobDescText string) (score float64) {
	termsA := tokenize(resumeText)
	termsB := tokenize(jobDescText)
	if len(termsA) == 0 || len(termsB) == 0 {
		return score
	}

	countsA := termCounts(termsA)
	countsB := termCounts(termsB)

	// Stable vocabulary over both documents.
	vocab := make([]string, 0, len(countsA)+len(countsB))
	seen := map[string]bool{}
	for _, term := range append(termsA, termsB...) {
		if !seen[term] {
			seen[term] = true
			vocab = append(vocab, term)
		}
	}

	vecA := weightVector(vocab, countsA, countsB)
	vecB := weightVector(vocab, countsB, countsA)

	normA := floats.Norm(vecA, 2)
	normB := floats.Norm(vecB, 2)
	if normA == 0 || normB == 0 {
		return score
	}

	score = floats.Dot(vecA, vecB) / (normA * normB)
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}

	return score
}

// tokenize lowercases text, strips English stop words, and splits it into
// terms.
func tokenize(text string) (terms []string) {
	cleaned := stopwords.CleanString(strings.ToLower(text), "en", false)
	terms = wordPattern.FindAllString(cleaned, -1)
	return terms
}

func termCounts(terms []string) (counts map[string]float64) {
	counts = make(map[string]float64, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}

// weightVector builds the smoothed TF-IDF vector for one document of the
// two-document corpus: idf = ln((1+n)/(1+df)) + 1 with n = 2.
func weightVector(vocab []string, own, other map[string]float64) (vec []float64) {
	vec = make([]float64, len(vocab))
	for i, term := range vocab {
		tf := own[term]
		if tf == 0 {
			continue
		}
		df := 1.0
		if other[term] > 0 {
			df = 2.0
		}
		vec[i] = tf * (math.Log(3.0/(1.0+df)) + 1.0)
	}
	return vec
}
