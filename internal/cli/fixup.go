package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvalden/schemaguard/internal/config"
	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/internal/services"
)

var fixupCmd = &cobra.Command{
	Use:   "fixup <artifact_path>",
	Short: "Apply configured fixups to an existing schema file",
	Long: `Fixup applies the regex fixups from schemaguard.yaml to an existing schema
file, in place, without regenerating or verifying it.

Fixups run in configuration order; the output of one is the input of the
next. If any fixup fails, or a fixup marked modificationRequired does not
change the text, the file is left untouched.

Examples:
  # Apply the project's fixups to a hand-edited schema
  schemaguard fixup build/schema.sql

  # Project configuration in another directory
  schemaguard fixup build/schema.sql --project ./db`,
	Args: cobra.ExactArgs(1),
	RunE: runFixup,
}

var fixupProjectPath string

func init() {
	rootCmd.AddCommand(fixupCmd)

	fixupCmd.Flags().StringVarP(&fixupProjectPath, "project", "p", ".",
		"Directory containing schemaguard.yaml")
}

func runFixup(cmd *cobra.Command, args []string) error {
	artifactPath := args[0]
	verbose := getVerboseFlag(cmd)

	projectCfg, err := config.Load(fixupProjectPath)
	if err != nil {
		return err
	}
	cfg := projectCfg.ToExportConfig(fixupProjectPath)
	if len(cfg.Fixups) == 0 {
		fmt.Fprintln(os.Stderr, "No fixups configured, nothing to do")
		return nil
	}

	logger := logging.NewConsoleLogger(verbose)
	runner := services.NewRunner(nil, logger)
	if err := runner.Fixup(cfg, artifactPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Applied %d fixup(s) to %s\n", len(cfg.Fixups), artifactPath)
	return nil
}
