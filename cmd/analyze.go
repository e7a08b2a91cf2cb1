package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nikogura/resume-review/pkg/analyzer"
	"github.com/nikogura/resume-review/pkg/config"
	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/nikogura/resume-review/pkg/jd"
	"github.com/nikogura/resume-review/pkg/logging"
	"github.com/nikogura/resume-review/pkg/nlp"
	"github.com/nikogura/resume-review/pkg/scorer"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeJD string

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeJobType string

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCriteria string

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume against a job description",
	Long: `Analyzes a plain-text resume against a job description and prints an
overall match score with a per-category breakdown, section detection results,
and the job description keywords the resume is missing.

The job description can come from a file, an http(s) URL, or stdin ("-").

Examples:
  # General analysis with the JD in a file
  resume-review analyze resume.txt --jd posting.txt

  # Software engineering scoring against a posting URL
  resume-review analyze resume.txt --jd https://example.com/jobs/42 --job-type software_engineering

  # Pipe the JD in
  pbpaste | resume-review analyze resume.txt --jd -`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeJD, "jd", "", "Job description: file path, URL, or '-' for stdin (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobType, "job-type", "", "Job type: general or software_engineering (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeCriteria, "criteria", "", "Scoring criteria file (default from config)")
	_ = analyzeCmd.MarkFlagRequired("jd")
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		return err
	}

	logger := logging.New(logLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	jobType := analyzeJobType
	if jobType == "" {
		jobType = cfg.Defaults.JobType
	}

	criteriaPath := analyzeCriteria
	if criteriaPath == "" {
		criteriaPath = cfg.CriteriaLocation
	}

	// A broken or missing criteria file degrades scoring rather than
	// aborting the run.
	criterionList, loadErr := criteria.Load(criteriaPath)
	if loadErr != nil {
		logger.Error("failed to load scoring criteria, scoring will degrade",
			"path", criteriaPath, "error", loadErr)
	}
	logger.Debug("loaded scoring criteria", "count", len(criterionList))

	var pipeline *nlp.Pipeline
	pipeline, err = nlp.NewPipeline()
	if err != nil {
		err = fmt.Errorf("failed to initialize language pipeline: %w", err)
		return err
	}

	var resumeData []byte
	resumeData, err = os.ReadFile(args[0])
	if err != nil {
		err = fmt.Errorf("failed to read resume file: %w", err)
		return err
	}
	resumeText := string(resumeData)

	logger.Debug("fetching job description", "source", analyzeJD)
	var jobDescText string
	jobDescText, err = jd.Fetch(analyzeJD)
	if err != nil {
		err = fmt.Errorf("failed to fetch job description: %w", err)
		return err
	}

	result := analyzer.New(criterionList, pipeline, logger).Analyze(resumeText, jobDescText, jobType)

	printAnalysis(result)

	return err
}

// printAnalysis renders an analysis result for the terminal.
func printAnalysis(result analyzer.AnalysisResult) {
	titleCaser := cases.Title(language.English)

	fmt.Printf("Overall Match Score: %.2f%%\n", result.TotalScore*100)
	if result.JobType == analyzer.JobTypeSoftwareEngineering {
		fmt.Printf("Analysis Type: Software Engineering Resume Scoring\n\n")
	} else {
		fmt.Printf("Analysis Type: General Resume Analysis\n\n")
	}

	fmt.Printf("Score Breakdown:\n")
	if result.JobType == analyzer.JobTypeSoftwareEngineering {
		fmt.Printf("  Job-Specific Score:     %.2f%%\n", result.JobSpecificScore*100)
		fmt.Printf("  Keyword/Semantic Match: %.2f%%\n", result.KeywordScore*100)
		fmt.Printf("  Skill Match:            %.2f%%\n", result.SkillMatchScore*100)
	} else {
		fmt.Printf("  Keyword/Semantic Match: %.2f%%\n", result.KeywordScore*100)
		fmt.Printf("  Skill Match:            %.2f%%\n", result.SkillMatchScore*100)
		fmt.Printf("  Structure & Readability: %.2f%%\n", result.StructureScore*100)
	}
	fmt.Println()

	if result.JobType == analyzer.JobTypeSoftwareEngineering {
		printSectionScores(result, titleCaser)
	}

	if len(result.PresentSections) > 0 {
		fmt.Printf("Detected Sections: %s\n", titleCaseList(result.PresentSections, titleCaser))
	}
	if len(result.MissingSections) > 0 {
		fmt.Printf("Missing Sections:  %s\n", titleCaseList(result.MissingSections, titleCaser))
	}
	fmt.Println()

	if len(result.Feedback) > 0 {
		printFeedback(result.Feedback)
	}

	if len(result.MissingKeywords) > 0 {
		fmt.Printf("Keywords to Consider Adding:\n  %s\n", strings.Join(result.MissingKeywords, ", "))
	} else {
		fmt.Printf("Excellent keyword coverage!\n")
	}

	if result.JobType != analyzer.JobTypeSoftwareEngineering {
		fmt.Printf("\nTip: Ensure your resume uses clear bullet points (•) under your experience to improve clarity.\n")
	}
}

// printSectionScores lists the per-criterion results in the Section bucket,
// sorted by name for stable output.
func printSectionScores(result analyzer.AnalysisResult, titleCaser cases.Caser) {
	sectionScores, ok := result.CategoryScores[criteria.CategorySection]
	if !ok || len(sectionScores) == 0 {
		return
	}

	names := make([]string, 0, len(sectionScores))
	for name := range sectionScores {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Section Scores:\n")
	for _, name := range names {
		fmt.Printf("  %s: %.0f%%\n", titleCaser.String(name), sectionScores[name].Score*100)
	}
	fmt.Println()
}

// printFeedback groups feedback items by category, preserving the order the
// categories first appear in.
func printFeedback(feedback []scorer.FeedbackItem) {
	grouped := map[string][]scorer.FeedbackItem{}
	var order []string
	for _, item := range feedback {
		category := item.Category
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], item)
	}

	fmt.Printf("Improvement Recommendations:\n")
	for _, category := range order {
		items := grouped[category]
		fmt.Printf("  %s (%d items):\n", category, len(items))
		for _, item := range items {
			fmt.Printf("    %s %s (weight %.0f%%)\n", weightMarker(item.Weight), item.Issue, item.Weight*100)
			fmt.Printf("      %s\n", item.Suggestion)
		}
	}
	fmt.Println()
}

// weightMarker flags how much a failed criterion matters.
func weightMarker(weight float64) (marker string) {
	switch {
	case weight >= 0.08:
		marker = "[high]"
	case weight >= 0.05:
		marker = "[medium]"
	default:
		marker = "[low]"
	}
	return marker
}

// titleCaseList joins names title-cased for display.
func titleCaseList(names []string, titleCaser cases.Caser) (joined string) {
	cased := make([]string, len(names))
	for i, name := range names {
		cased[i] = titleCaser.String(name)
	}
	joined = strings.Join(cased, ", ")
	return joined
}
