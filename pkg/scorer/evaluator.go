// Package scorer evaluates weighted scoring criteria against a resume and
// aggregates them into a normalized total with per-criterion feedback.
package scorer

import (
	"strings"

	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/nikogura/resume-review/pkg/nlp"
	"github.com/nikogura/resume-review/pkg/sections"
)

// Default scores for patterns a category has no specific heuristic for.
const (
	formattingDefault  = 0.5
	readabilityDefault = 0.7
	atsDefault         = 0.8
	graphicsPenalty    = 0.3
)

// Evaluator scores a resume against individual criteria.
type Evaluator struct {
	pipeline *nlp.Pipeline
}

// NewEvaluator creates an evaluator using the given language pipeline.
func NewEvaluator(pipeline *nlp.Pipeline) (evaluator *Evaluator) {
	evaluator = &Evaluator{pipeline: pipeline}
	return evaluator
}

// Evaluate computes the sub-score in [0,1] for one criterion, dispatched
// by category. Unknown categories score 0.0.
func (e *Evaluator) Evaluate(resumeText string, sectionMap sections.SectionMap, criterion criteria.Criterion) (score float64) {
	switch criterion.Category {
	case criteria.CategorySection:
		score = checkSectionPresence(sectionMap, criterion.Pattern)
	case criteria.CategoryBulletQuality:
		score = checkBulletQuality(resumeText, criterion.Pattern)
	case criteria.CategoryKeywords:
		score = checkKeywordMatch(resumeText, criterion.Pattern)
	case criteria.CategoryFormatting:
		score = checkFormatting(resumeText, criterion.Pattern)
	case criteria.CategoryReadability:
		score = e.checkReadability(resumeText, criterion.Pattern)
	case criteria.CategoryATSFriendly:
		score = checkATSFriendly(resumeText, criterion.Pattern)
	}
	return score
}

// checkSectionPresence scores 1.0 when any synonym of the requested
// section is a substring of a detected section key. Synonyms resolve
// through the canonical registry; unknown names fall back to their own
// lowercased text.
func checkSectionPresence(sectionMap sections.SectionMap, sectionName string) (score float64) {
	variants, found := sections.Synonyms(strings.ToLower(sectionName))
	if !found {
		variants = []string{strings.ToLower(sectionName)}
	}

	for _, variant := range variants {
		for key, detection := range sectionMap {
			if !detection.Detected() {
				continue
			}
			if strings.Contains(strings.ToLower(key), variant) {
				score = 1.0
				return score
			}
		}
	}

	return score
}

// checkBulletQuality dispatches on the bullet-quality rule named by the
// pattern.
func checkBulletQuality(resumeText, pattern string) (score float64) {
	lowered := strings.ToLower(pattern)
	if strings.Contains(lowered, "action verb") {
		score = checkActionVerbs(resumeText)
		return score
	}
	if strings.Contains(lowered, "number") || strings.Contains(lowered, "metric") {
		score = checkQuantifiedMetrics(resumeText)
		return score
	}
	return score
}

// checkActionVerbs scores the fraction of bullets whose first word is a
// known action verb.
func checkActionVerbs(resumeText string) (score float64) {
	bulletLines := bullets(resumeText)
	if len(bulletLines) == 0 {
		return score
	}

	verbCount := 0
	for _, bullet := range bulletLines {
		words := strings.Fields(strings.TrimSpace(bullet))
		if len(words) == 0 {
			continue
		}
		if actionVerbs[strings.ToLower(words[0])] {
			verbCount++
		}
	}

	score = float64(verbCount) / float64(len(bulletLines))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// checkQuantifiedMetrics scores the fraction of bullets containing at
// least one quantified metric.
func checkQuantifiedMetrics(resumeText string) (score float64) {
	bulletLines := bullets(resumeText)
	if len(bulletLines) == 0 {
		return score
	}

	quantified := 0
	for _, bullet := range bulletLines {
		for _, pattern := range metricPatterns {
			if pattern.MatchString(bullet) {
				quantified++
				break
			}
		}
	}

	score = float64(quantified) / float64(len(bulletLines))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// checkKeywordMatch scores the fraction of a comma-separated keyword list
// found case-insensitively in the resume text.
func checkKeywordMatch(resumeText, keywords string) (score float64) {
	var keywordList []string
	for _, keyword := range strings.Split(keywords, ",") {
		trimmed := strings.ToLower(strings.TrimSpace(keyword))
		if trimmed != "" {
			keywordList = append(keywordList, trimmed)
		}
	}
	if len(keywordList) == 0 {
		return score
	}

	resumeLower := strings.ToLower(resumeText)
	found := 0
	for _, keyword := range keywordList {
		if strings.Contains(resumeLower, keyword) {
			found++
		}
	}

	score = float64(found) / float64(len(keywordList))
	return score
}

// checkFormatting dispatches on the formatting rule named by the pattern.
func checkFormatting(resumeText, pattern string) (score float64) {
	lowered := strings.ToLower(pattern)
	if strings.Contains(lowered, "bullet count") {
		score = checkBulletCount(resumeText)
		return score
	}
	if strings.Contains(lowered, "sentence length") {
		score = checkSentenceLength(resumeText)
		return score
	}
	score = formattingDefault
	return score
}

// checkBulletCount scores 1.0 for a reasonable total bullet count, 0.7 for
// any other non-zero count, and 0.0 for none.
func checkBulletCount(resumeText string) (score float64) {
	count := len(bullets(resumeText))
	switch {
	case count >= 2 && count <= 15:
		score = 1.0
	case count > 0:
		score = 0.7
	}
	return score
}

// checkSentenceLength scores the fraction of punctuation-delimited
// segments with a word count between 1 and 30.
func checkSentenceLength(resumeText string) (score float64) {
	segments := sentenceSplit.Split(resumeText, -1)
	if len(segments) == 0 {
		return score
	}

	goodLength := 0
	for _, segment := range segments {
		wordCount := len(strings.Fields(segment))
		if wordCount >= 1 && wordCount <= 30 {
			goodLength++
		}
	}

	score = float64(goodLength) / float64(len(segments))
	return score
}

// checkReadability dispatches on the readability rule named by the
// pattern.
func (e *Evaluator) checkReadability(resumeText, pattern string) (score float64) {
	if strings.Contains(strings.ToLower(pattern), "passive voice") {
		score = e.checkPassiveVoice(resumeText)
		return score
	}
	score = readabilityDefault
	return score
}

// checkPassiveVoice scores higher for less passive voice. Text with no
// sentences scores 1.0; a pipeline failure falls back to the category
// default.
func (e *Evaluator) checkPassiveVoice(resumeText string) (score float64) {
	passive, total, err := e.pipeline.PassiveSentences(resumeText)
	if err != nil {
		score = readabilityDefault
		return score
	}
	if total == 0 {
		score = 1.0
		return score
	}

	score = 1.0 - float64(passive)/float64(total)
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// checkATSFriendly scores ATS compatibility heuristics keyed by pattern.
func checkATSFriendly(resumeText, pattern string) (score float64) {
	lowered := strings.ToLower(pattern)
	if strings.Contains(lowered, "standard fonts") {
		score = atsDefault
		return score
	}
	if strings.Contains(lowered, "graphics") {
		for _, indicator := range graphicIndicators {
			if strings.Contains(resumeText, indicator) {
				score = graphicsPenalty
				return score
			}
		}
		score = 1.0
		return score
	}
	score = atsDefault
	return score
}
