package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a new schemaguard project",
	Long: `Initialize a schemaguard project into the specified directory.

The init command creates:
- schemaguard.yaml project configuration
- schema/ directory with a sample entity definition
- src/schema/ directory for the committed baseline

Target directory must be empty or non-existent.

Examples:
  schemaguard init .                    # Initialize in current directory
  schemaguard init ./myproject          # Initialize in ./myproject
  schemaguard init /absolute/path       # Initialize at absolute path`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var initTemplate string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "Template to use")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	// Project name comes from the target directory
	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}
	verbose := getVerboseFlag(cmd)

	scaffolder := scaffold.NewScaffolder(logging.NewConsoleLogger(verbose))
	if err := scaffolder.CreateProject(projectName, initTemplate, targetPath); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n✓ Project '%s' initialized in '%s'\n", projectName, targetPath)
	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  # Edit schema/entities.yaml, then generate the baseline:")
	fmt.Fprintln(os.Stderr, "  schemaguard export . --verify NONE")
	fmt.Fprintln(os.Stderr, "  # From then on, verify on every build:")
	fmt.Fprintln(os.Stderr, "  schemaguard export .")

	return nil
}
