package scorer

import (
	"regexp"

	"github.com/nikogura/resume-review/pkg/criteria"
)

// bulletPattern matches one achievement bullet: a line starting with a
// dash or bullet glyph, optionally indented.
//
//nolint:gochecknoglobals // Scoring pattern constants
var bulletPattern = regexp.MustCompile(`(?m)^\s*[-•]\s*(.+)$`)

// sentenceSplit matches runs of sentence-terminal punctuation. Splitting
// on it keeps empty segments, which the regression baselines depend on.
//
//nolint:gochecknoglobals // Scoring pattern constants
var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// actionVerbs is the vocabulary a strong bullet opens with.
//
//nolint:gochecknoglobals // Scoring vocabulary constants
var actionVerbs = map[string]bool{
	"developed": true, "implemented": true, "designed": true, "built": true,
	"created": true, "led": true, "managed": true, "optimized": true,
	"improved": true, "reduced": true, "increased": true, "deployed": true,
	"migrated": true, "collaborated": true, "architected": true,
	"engineered": true, "programmed": true, "automated": true,
}

// metricPatterns detect quantified impact in a bullet: percentages,
// k-suffixed numbers, durations, large-number words, currency, decimals,
// multipliers, and countable entities.
//
//nolint:gochecknoglobals // Scoring pattern constants
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\d+[kK]`),
	regexp.MustCompile(`(?i)\d+\s*(hours?|days?|weeks?|months?|years?)`),
	regexp.MustCompile(`(?i)\d+\s*(million|billion|thousand)`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+\.\d+`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\d+\s*(users?|customers?|clients?|requests?)`),
}

// graphicIndicators are tokens that suggest embedded graphics an ATS
// cannot parse. Heuristic, not verified ATS behavior.
//
//nolint:gochecknoglobals // Scoring vocabulary constants
var graphicIndicators = []string{"[image]", "[graphic]", "[chart]", "█", "▪", "▫"}

// genericSuggestion is the fallback when no specific suggestion exists for
// a failed criterion.
const genericSuggestion = "Consider improving this area based on job requirements."

// suggestions maps category and pattern to improvement advice for failed
// criteria.
//
//nolint:gochecknoglobals // Feedback text constants
var suggestions = map[criteria.Category]map[string]string{
	criteria.CategorySection: {
		"Education":  "Add an Education section with your degree, institution, and graduation year.",
		"Experience": "Include a detailed Work Experience section with your professional roles.",
		"Skills":     "Add a Skills section listing your technical competencies.",
		"Projects":   "Include a Projects section showcasing your work outside of employment.",
	},
	criteria.CategoryBulletQuality: {
		"Starts with action verb":             `Start each bullet point with a strong action verb like "Developed", "Implemented", or "Led".`,
		"Contains a number/quantified metric": `Include specific numbers and metrics in your bullet points (e.g., "Improved performance by 40%").`,
	},
	criteria.CategoryKeywords: {
		"Python, Java, C++, Go":               "Include relevant programming languages mentioned in the job description.",
		"SQL, NoSQL, MongoDB, PostgreSQL":     "Mention database technologies you've worked with.",
		"AWS, GCP, Azure, Docker, Kubernetes": "Include cloud and DevOps technologies from your experience.",
		"REST, gRPC, GraphQL":                 "Mention API technologies you've used.",
		"React, Node.js, Express, TypeScript": "Include web development frameworks and technologies.",
	},
}

// suggestionFor looks up improvement advice for a failed criterion.
func suggestionFor(criterion criteria.Criterion) (suggestion string) {
	suggestion = genericSuggestion
	byPattern, found := suggestions[criterion.Category]
	if !found {
		return suggestion
	}
	if specific, found := byPattern[criterion.Pattern]; found {
		suggestion = specific
	}
	return suggestion
}

// bullets extracts the bullet bodies from resume text.
func bullets(text string) (found []string) {
	for _, match := range bulletPattern.FindAllStringSubmatch(text, -1) {
		found = append(found, match[1])
	}
	return found
}
