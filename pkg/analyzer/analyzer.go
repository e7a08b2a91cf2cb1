// Package analyzer is the entry point of the scoring engine: it extracts
// resume sections, runs either the criterion-driven scorer or the
// general-mode comparator, and assembles the analysis result.
package analyzer

import (
	"sort"
	"strings"

	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/nikogura/resume-review/pkg/logging"
	"github.com/nikogura/resume-review/pkg/nlp"
	"github.com/nikogura/resume-review/pkg/scorer"
	"github.com/nikogura/resume-review/pkg/sections"
	"github.com/nikogura/resume-review/pkg/similarity"
)

// Fixed weights of the general-mode blend.
const (
	keywordWeight    = 0.40
	skillMatchWeight = 0.30
	structureWeight  = 0.20
	clarityWeight    = 0.10
)

// missingKeywordCap bounds the missing-keyword suggestions shown to the
// caller.
const missingKeywordCap = 10

// keySections are the sections whose presence drives the structure score
// and the missing-section list.
//
//nolint:gochecknoglobals // Scoring vocabulary constants
var keySections = []string{sections.Experience, sections.Education, sections.Skills}

// Analyzer holds the scoring state for the lifetime of the process:
// configured criteria, the language pipeline, and a logger. All fields
// are immutable after construction, so one Analyzer is safe to share
// across concurrent callers.
type Analyzer struct {
	scorer   *scorer.Scorer
	pipeline *nlp.Pipeline
	logger   *logging.Logger
}

// New creates an Analyzer. An empty criteria list is valid: specialized
// scoring then degrades to a total of 0.0 with no feedback.
func New(criterionList []criteria.Criterion, pipeline *nlp.Pipeline, logger *logging.Logger) (a *Analyzer) {
	a = &Analyzer{
		scorer:   scorer.NewScorer(criterionList, pipeline),
		pipeline: pipeline,
		logger:   logger,
	}
	return a
}

// Analyze scores a resume against a job description. Unrecognized job
// types are analyzed in general mode.
func (a *Analyzer) Analyze(resumeText, jobDescText, jobType string) (result AnalysisResult) {
	sectionMap := sections.Extract(resumeText)

	if jobType == JobTypeSoftwareEngineering {
		result = a.analyzeSpecialized(resumeText, jobDescText, sectionMap)
		result.JobType = jobType
		return result
	}

	result = a.analyzeGeneral(resumeText, jobDescText, sectionMap)
	result.JobType = JobTypeGeneral
	return result
}

// analyzeSpecialized runs the configured criteria for the total score and
// feedback, and still computes the keyword metrics for comparison.
func (a *Analyzer) analyzeSpecialized(resumeText, jobDescText string, sectionMap sections.SectionMap) (result AnalysisResult) {
	aggregate := a.scorer.Score(resumeText, sectionMap)

	keywordScore := similarity.Cosine(resumeText, jobDescText)
	skillMatch, missingKeywords := a.keywordOverlap(resumeText, jobDescText)

	result = AnalysisResult{
		TotalScore:       aggregate.TotalScore,
		JobSpecificScore: aggregate.TotalScore,
		KeywordScore:     keywordScore,
		SkillMatchScore:  skillMatch,
		MissingKeywords:  missingKeywords,
		PresentSections:  presentSections(sectionMap),
		MissingSections:  missingSections(sectionMap),
		Feedback:         aggregate.Feedback,
		CategoryScores:   aggregate.CategoryScores,
	}

	a.logger.Debug("specialized analysis complete",
		"total", result.TotalScore,
		"criteria", len(a.scorer.Criteria()),
		"feedback", len(result.Feedback))

	return result
}

// analyzeGeneral runs the fixed-weight blend used when no specialized
// criterion set applies.
func (a *Analyzer) analyzeGeneral(resumeText, jobDescText string, sectionMap sections.SectionMap) (result AnalysisResult) {
	keywordScore := similarity.Cosine(resumeText, jobDescText)
	skillMatch, missingKeywords := a.keywordOverlap(resumeText, jobDescText)

	present := presentSections(sectionMap)
	structureScore := keySectionRatio(sectionMap)

	// Bullet glyphs or asterisks signal a readable, scannable layout.
	// Deliberately approximate.
	clarityScore := 0.5
	if strings.Contains(resumeText, "•") || strings.Contains(resumeText, "*") {
		clarityScore = 1.0
	}

	total := keywordScore*keywordWeight +
		skillMatch*skillMatchWeight +
		structureScore*structureWeight +
		clarityScore*clarityWeight

	result = AnalysisResult{
		TotalScore:      total,
		KeywordScore:    keywordScore,
		SkillMatchScore: skillMatch,
		StructureScore:  structureScore,
		ClarityScore:    clarityScore,
		MissingKeywords: missingKeywords,
		PresentSections: present,
		MissingSections: missingSections(sectionMap),
	}

	a.logger.Debug("general analysis complete",
		"total", result.TotalScore,
		"keyword", keywordScore,
		"skill_match", skillMatch,
		"structure", structureScore)

	return result
}

// keywordOverlap extracts noun keywords from both texts and returns the
// skill match ratio plus the sorted, capped missing-keyword list.
func (a *Analyzer) keywordOverlap(resumeText, jobDescText string) (skillMatch float64, missingKeywords []string) {
	missingKeywords = []string{}

	resumeKeywords, err := a.pipeline.Keywords(resumeText)
	if err != nil {
		a.logger.Warn("resume keyword extraction failed", "error", err)
		resumeKeywords = nlp.KeywordSet{}
	}

	jobKeywords, err := a.pipeline.Keywords(jobDescText)
	if err != nil {
		a.logger.Warn("job description keyword extraction failed", "error", err)
		jobKeywords = nlp.KeywordSet{}
	}

	if len(jobKeywords) > 0 {
		common := resumeKeywords.Intersect(jobKeywords)
		skillMatch = float64(len(common)) / float64(len(jobKeywords))
	}

	missingKeywords = jobKeywords.Subtract(resumeKeywords)
	sort.Strings(missingKeywords)
	if len(missingKeywords) > missingKeywordCap {
		missingKeywords = missingKeywords[:missingKeywordCap]
	}

	return skillMatch, missingKeywords
}

// presentSections lists detected canonical sections in registry order.
func presentSections(sectionMap sections.SectionMap) (present []string) {
	present = []string{}
	for _, name := range sections.Canonical() {
		if sectionMap[name].Detected() {
			present = append(present, name)
		}
	}
	return present
}

// missingSections lists the key sections not detected in any form.
func missingSections(sectionMap sections.SectionMap) (missing []string) {
	missing = []string{}
	for _, name := range keySections {
		if !sectionMap[name].Detected() {
			missing = append(missing, name)
		}
	}
	return missing
}

// keySectionRatio scores how many of the key sections are present.
func keySectionRatio(sectionMap sections.SectionMap) (ratio float64) {
	count := 0
	for _, name := range keySections {
		if sectionMap[name].Detected() {
			count++
		}
	}
	ratio = float64(count) / float64(len(keySections))
	return ratio
}
