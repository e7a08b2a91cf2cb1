package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/nikogura/resume-review/pkg/sections"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//nolint:gochecknoglobals // Cobra boilerplate
var sectionsCmd = &cobra.Command{
	Use:   "sections [resume-file]",
	Short: "Show which resume sections were detected",
	Long: `Extracts sections from a plain-text resume and shows how each canonical
section was detected: as a structured header block with content, as a
passing inline mention, or not at all.

Useful for debugging why a section criterion is not scoring as expected.

Examples:
  resume-review sections resume.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) (err error) {
	var resumeData []byte
	resumeData, err = os.ReadFile(args[0])
	if err != nil {
		err = fmt.Errorf("failed to read resume file: %w", err)
		return err
	}

	sectionMap := sections.Extract(string(resumeData))
	titleCaser := cases.Title(language.English)

	for _, canonical := range sections.Canonical() {
		detection, found := sectionMap[canonical]
		name := titleCaser.String(canonical)

		switch {
		case !found || !detection.Detected():
			fmt.Printf("%-24s not detected\n", name)
		case detection.Inline:
			fmt.Printf("%-24s inline mention\n", name)
		default:
			fmt.Printf("%-24s structured (%d characters)\n", name, len(detection.Content))
			if getVerbose() {
				fmt.Printf("%s\n", indent(detection.Content, "    "))
			}
		}
	}

	return err
}

// indent prefixes every line of text.
func indent(text, prefix string) (indented string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	indented = strings.Join(lines, "\n")
	return indented
}
