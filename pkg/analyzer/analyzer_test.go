package analyzer

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/nikogura/resume-review/pkg/logging"
	"github.com/nikogura/resume-review/pkg/nlp"
)

// regressionCriteria is a fixed criterion set whose sub-scores on the
// fixtures are all exactly derivable, making the total a stable baseline.
func regressionCriteria() (criterionList []criteria.Criterion) {
	criterionList = []criteria.Criterion{
		{Category: criteria.CategorySection, Pattern: "Experience", Weight: 0.15},
		{Category: criteria.CategorySection, Pattern: "Education", Weight: 0.10},
		{Category: criteria.CategorySection, Pattern: "Skills", Weight: 0.10},
		{Category: criteria.CategorySection, Pattern: "Projects", Weight: 0.08},
		{Category: criteria.CategoryBulletQuality, Pattern: "Starts with action verb", Weight: 0.10},
		{Category: criteria.CategoryBulletQuality, Pattern: "Contains a number/quantified metric", Weight: 0.10},
		{Category: criteria.CategoryKeywords, Pattern: "Python, Java, C++, Go", Weight: 0.08},
		{Category: criteria.CategoryFormatting, Pattern: "Bullet count per section", Weight: 0.05},
		{Category: criteria.CategoryATSFriendly, Pattern: "Standard fonts", Weight: 0.04},
		{Category: criteria.CategoryATSFriendly, Pattern: "No graphics or images", Weight: 0.04},
	}
	return criterionList
}

func newTestAnalyzer(t *testing.T, criterionList []criteria.Criterion) (a *Analyzer) {
	t.Helper()
	pipeline, err := nlp.NewPipeline()
	if err != nil {
		t.Fatalf("Failed to build pipeline: %v", err)
	}
	a = New(criterionList, pipeline, logging.NewNop())
	return a
}

func loadFixture(t *testing.T, name string) (text string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	text = string(data)
	return text
}

func TestAnalyzeSpecializedGoodResumeBaseline(t *testing.T) {
	resume := loadFixture(t, "good_resume.txt")
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, regressionCriteria())
	result := a.Analyze(resume, jd, JobTypeSoftwareEngineering)

	// Hand-derived: sections all present (0.43 weighted), all 5 bullets
	// open with action verbs (0.10), 2 of 5 bullets quantified (0.04),
	// 2 of 4 keyword list hits (0.04), bullet count in range (0.05),
	// fonts placeholder (0.032), no graphics (0.04); weights sum 0.84.
	want := 0.732 / 0.84
	if math.Abs(result.TotalScore-want) > 1e-9 {
		t.Errorf("Expected baseline total %.10f, got %.10f", want, result.TotalScore)
	}
	if result.JobSpecificScore != result.TotalScore {
		t.Errorf("Specialized total must equal the job-specific score")
	}
	if result.JobType != JobTypeSoftwareEngineering {
		t.Errorf("Expected job type to round-trip, got %s", result.JobType)
	}

	wantPresent := []string{"summary", "experience", "education", "skills", "projects"}
	if !reflect.DeepEqual(result.PresentSections, wantPresent) {
		t.Errorf("Expected present sections %v, got %v", wantPresent, result.PresentSections)
	}
	if len(result.MissingSections) != 0 {
		t.Errorf("Expected no missing sections, got %v", result.MissingSections)
	}

	// Only the quantified-metric criterion (0.4) fails the threshold.
	if len(result.Feedback) != 1 {
		t.Fatalf("Expected 1 feedback item, got %d: %v", len(result.Feedback), result.Feedback)
	}
	if result.Feedback[0].Issue != "Contains a number/quantified metric" {
		t.Errorf("Wrong failing criterion: %s", result.Feedback[0].Issue)
	}
}

func TestAnalyzeSpecializedBadResumeBaseline(t *testing.T) {
	resume := loadFixture(t, "bad_resume.txt")
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, regressionCriteria())
	result := a.Analyze(resume, jd, JobTypeSoftwareEngineering)

	// Hand-derived: only education (0.10), fonts (0.032), and no-graphics
	// (0.04) score; weights sum 0.84.
	want := 0.172 / 0.84
	if math.Abs(result.TotalScore-want) > 1e-9 {
		t.Errorf("Expected baseline total %.10f, got %.10f", want, result.TotalScore)
	}

	wantPresent := []string{"education"}
	if !reflect.DeepEqual(result.PresentSections, wantPresent) {
		t.Errorf("Expected present sections %v, got %v", wantPresent, result.PresentSections)
	}
	wantMissing := []string{"experience", "skills"}
	if !reflect.DeepEqual(result.MissingSections, wantMissing) {
		t.Errorf("Expected missing sections %v, got %v", wantMissing, result.MissingSections)
	}

	if len(result.Feedback) != 7 {
		t.Errorf("Expected 7 feedback items, got %d", len(result.Feedback))
	}
}

func TestAnalyzeGoodOutscoresBad(t *testing.T) {
	jd := loadFixture(t, "job_description.txt")
	a := newTestAnalyzer(t, regressionCriteria())

	good := a.Analyze(loadFixture(t, "good_resume.txt"), jd, JobTypeSoftwareEngineering)
	bad := a.Analyze(loadFixture(t, "bad_resume.txt"), jd, JobTypeSoftwareEngineering)

	if good.TotalScore <= bad.TotalScore {
		t.Errorf("Expected good resume (%.4f) to outscore bad resume (%.4f)",
			good.TotalScore, bad.TotalScore)
	}
}

func TestAnalyzeGeneralMode(t *testing.T) {
	resume := loadFixture(t, "good_resume.txt")
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, nil)
	result := a.Analyze(resume, jd, JobTypeGeneral)

	if result.JobType != JobTypeGeneral {
		t.Errorf("Expected general job type, got %s", result.JobType)
	}

	// All three key sections are structured blocks.
	if result.StructureScore != 1.0 {
		t.Errorf("Expected structure score 1.0, got %f", result.StructureScore)
	}

	// The fixture uses dash bullets, not glyphs or asterisks.
	if result.ClarityScore != 0.5 {
		t.Errorf("Expected clarity score 0.5, got %f", result.ClarityScore)
	}

	if result.KeywordScore <= 0.0 || result.KeywordScore >= 1.0 {
		t.Errorf("Expected keyword score strictly between 0 and 1, got %f", result.KeywordScore)
	}
	if result.SkillMatchScore < 0.0 || result.SkillMatchScore > 1.0 {
		t.Errorf("Skill match score out of range: %f", result.SkillMatchScore)
	}
	if result.TotalScore <= 0.0 || result.TotalScore > 1.0 {
		t.Errorf("Total score out of range: %f", result.TotalScore)
	}

	// General mode carries no criterion feedback.
	if len(result.Feedback) != 0 {
		t.Errorf("Expected no feedback in general mode, got %v", result.Feedback)
	}
}

func TestAnalyzeSkillMatchProperSubset(t *testing.T) {
	// Resume covers part of the job description's vocabulary, so the
	// skill match must land strictly between 0 and 1.
	resume := "Summary\nDaily work with Python and Docker on production systems.\n"
	jd := "Seeking engineers with Python, Docker, Kubernetes, and Terraform knowledge for the platform team."

	a := newTestAnalyzer(t, nil)
	result := a.Analyze(resume, jd, JobTypeGeneral)

	if result.SkillMatchScore <= 0.0 || result.SkillMatchScore >= 1.0 {
		t.Errorf("Expected skill match strictly between 0 and 1, got %f", result.SkillMatchScore)
	}
	if len(result.MissingKeywords) == 0 {
		t.Error("Expected missing keywords for uncovered job vocabulary")
	}
}

func TestAnalyzeMissingKeywordsCappedAndSorted(t *testing.T) {
	resume := "Summary\nA short resume about accounting.\n"
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, nil)
	result := a.Analyze(resume, jd, JobTypeGeneral)

	if len(result.MissingKeywords) > 10 {
		t.Errorf("Missing keywords exceed cap: %d", len(result.MissingKeywords))
	}
	if !sort.StringsAreSorted(result.MissingKeywords) {
		t.Errorf("Missing keywords not sorted: %v", result.MissingKeywords)
	}
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	result := a.Analyze("", "", JobTypeGeneral)

	if result.KeywordScore != 0.0 {
		t.Errorf("Expected 0.0 keyword score for empty input, got %f", result.KeywordScore)
	}
	if result.SkillMatchScore != 0.0 {
		t.Errorf("Expected 0.0 skill match for empty input, got %f", result.SkillMatchScore)
	}
	if result.StructureScore != 0.0 {
		t.Errorf("Expected 0.0 structure score for empty input, got %f", result.StructureScore)
	}
	if len(result.MissingKeywords) != 0 {
		t.Errorf("Expected no missing keywords, got %v", result.MissingKeywords)
	}
}

func TestAnalyzeEmptyCriteriaDegrades(t *testing.T) {
	resume := loadFixture(t, "good_resume.txt")
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, nil)
	result := a.Analyze(resume, jd, JobTypeSoftwareEngineering)

	if result.TotalScore != 0.0 {
		t.Errorf("Expected total 0.0 with no criteria, got %f", result.TotalScore)
	}
	if len(result.Feedback) != 0 {
		t.Errorf("Expected no feedback with no criteria, got %v", result.Feedback)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	resume := loadFixture(t, "good_resume.txt")
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, regressionCriteria())
	first := a.Analyze(resume, jd, JobTypeSoftwareEngineering)
	second := a.Analyze(resume, jd, JobTypeSoftwareEngineering)

	if !reflect.DeepEqual(first, second) {
		t.Error("Identical inputs produced different results")
	}
}

func TestAnalyzeUnknownJobTypeFallsBackToGeneral(t *testing.T) {
	resume := loadFixture(t, "good_resume.txt")
	jd := loadFixture(t, "job_description.txt")

	a := newTestAnalyzer(t, regressionCriteria())
	result := a.Analyze(resume, jd, "underwater_basket_weaving")

	if result.JobType != JobTypeGeneral {
		t.Errorf("Expected fallback to general mode, got %s", result.JobType)
	}
}
