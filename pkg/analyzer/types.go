package analyzer

import (
	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/nikogura/resume-review/pkg/scorer"
)

// Job types the analyzer understands. Anything else is analyzed as
// general.
const (
	JobTypeGeneral             = "general"
	JobTypeSoftwareEngineering = "software_engineering"
)

// AnalysisResult is the terminal output of one analysis call. General
// mode fills the four component scores; specialized mode fills the
// job-specific score, feedback, and per-category score buckets instead of
// the structure and clarity components.
type AnalysisResult struct {
	TotalScore       float64                                                 `json:"total_score"`
	JobType          string                                                  `json:"job_type"`
	JobSpecificScore float64                                                 `json:"job_specific_score,omitempty"`
	KeywordScore     float64                                                 `json:"keyword_score"`
	SkillMatchScore  float64                                                 `json:"skill_match_score"`
	StructureScore   float64                                                 `json:"structure_score,omitempty"`
	ClarityScore     float64                                                 `json:"clarity_score,omitempty"`
	PresentSections  []string                                                `json:"present_sections"`
	MissingSections  []string                                                `json:"missing_sections"`
	MissingKeywords  []string                                                `json:"missing_keywords"`
	Feedback         []scorer.FeedbackItem                                   `json:"detailed_feedback,omitempty"`
	CategoryScores   map[criteria.Category]map[string]scorer.CriterionResult `json:"category_scores,omitempty"`
}
