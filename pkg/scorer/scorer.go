package scorer

import (
	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/nikogura/resume-review/pkg/nlp"
	"github.com/nikogura/resume-review/pkg/sections"
)

// feedbackThreshold is the sub-score below which a criterion generates
// improvement feedback.
const feedbackThreshold = 0.5

// CriterionResult is one evaluated criterion, keyed by pattern within a
// category bucket.
type CriterionResult struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

// FeedbackItem is one improvement suggestion for a failed criterion.
type FeedbackItem struct {
	Category   string  `json:"category"`
	Issue      string  `json:"issue"`
	Suggestion string  `json:"suggestion"`
	Weight     float64 `json:"weight"`
}

// Result is the aggregate of one scoring pass.
type Result struct {
	TotalScore     float64                                          `json:"total_score"`
	CategoryScores map[criteria.Category]map[string]CriterionResult `json:"category_scores"`
	Feedback       []FeedbackItem                                   `json:"detailed_feedback"`
}

// Scorer runs all configured criteria against a resume and aggregates a
// weighted total. The criteria list is read-only for the scorer's
// lifetime; an empty list yields a total of 0.0 and no feedback.
type Scorer struct {
	criterionList []criteria.Criterion
	evaluator     *Evaluator
}

// NewScorer creates a scorer over the given criteria and language
// pipeline.
func NewScorer(criterionList []criteria.Criterion, pipeline *nlp.Pipeline) (scorer *Scorer) {
	scorer = &Scorer{
		criterionList: criterionList,
		evaluator:     NewEvaluator(pipeline),
	}
	return scorer
}

// Criteria returns the configured criteria.
func (s *Scorer) Criteria() (criterionList []criteria.Criterion) {
	criterionList = s.criterionList
	return criterionList
}

// Score evaluates every configured criterion, bucketing results by
// category and pattern, and returns the weighted mean as the total.
// Criteria scoring below the feedback threshold contribute a FeedbackItem
// in configuration order.
func (s *Scorer) Score(resumeText string, sectionMap sections.SectionMap) (result Result) {
	result = Result{
		CategoryScores: map[criteria.Category]map[string]CriterionResult{},
		Feedback:       []FeedbackItem{},
	}

	totalWeight := 0.0
	weightedScore := 0.0

	for _, criterion := range s.criterionList {
		score := s.evaluator.Evaluate(resumeText, sectionMap, criterion)

		bucket, found := result.CategoryScores[criterion.Category]
		if !found {
			bucket = map[string]CriterionResult{}
			result.CategoryScores[criterion.Category] = bucket
		}
		bucket[criterion.Pattern] = CriterionResult{
			Score:  score,
			Weight: criterion.Weight,
			Notes:  criterion.Notes,
		}

		weightedScore += score * criterion.Weight
		totalWeight += criterion.Weight

		if score < feedbackThreshold {
			result.Feedback = append(result.Feedback, FeedbackItem{
				Category:   string(criterion.Category),
				Issue:      criterion.Pattern,
				Suggestion: suggestionFor(criterion),
				Weight:     criterion.Weight,
			})
		}
	}

	if totalWeight > 0 {
		result.TotalScore = weightedScore / totalWeight
	}

	return result
}
