package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resume-review",
	Short: "Score resumes against job descriptions",
	Long: `resume-review analyzes a resume against a job description and reports
an overall match score, per-category breakdowns, detected and missing resume
sections, and the job description keywords the resume does not cover.

Scoring is fully deterministic and driven by a configurable JSON criteria file.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.resume-review/config.json)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// logLevel maps the verbose flag onto a log level, deferring to the
// configured level otherwise.
func logLevel(configured string) (level string) {
	if getVerbose() {
		level = "debug"
		return level
	}

	level = configured
	return level
}
