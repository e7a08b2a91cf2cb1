package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nikogura/resume-review/pkg/config"
	"github.com/nikogura/resume-review/pkg/criteria"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config and criteria file",
	Long: `Creates ~/.resume-review/config.json along with a copy of the default
scoring criteria. Existing files are left alone.

Edit the criteria file to tune section weights, keyword lists, and the rest
of the scoring rules for your own searches.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		err = fmt.Errorf("failed to create config: %w", err)
		return err
	}

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = fmt.Errorf("failed to load new config: %w", err)
		return err
	}

	err = installDefaultCriteria(cfg.CriteriaLocation)
	if err != nil {
		err = fmt.Errorf("failed to install default criteria: %w", err)
		return err
	}

	fmt.Printf("Created config and default criteria under ~/.resume-review\n")
	fmt.Printf("Criteria file: %s\n", cfg.CriteriaLocation)

	return err
}

// installDefaultCriteria writes the built-in criteria to path unless a file
// is already there.
func installDefaultCriteria(path string) (err error) {
	_, err = os.Stat(path)
	if err == nil {
		// Already present, leave the user's edits alone.
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(criteria.Default(), "", "  ")
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0600)
	return err
}
