package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/internal/services"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <actual_file> <baseline_file>",
	Short: "Compare a schema file byte-for-byte against a baseline",
	Long: `Verify compares two files byte-for-byte and fails with the offset and line
of the first difference. It is the standalone form of the verification step
that export runs automatically.

Examples:
  schemaguard verify build/schema.sql src/schema/create.sql`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	logger := logging.NewConsoleLogger(verbose)
	runner := services.NewRunner(nil, logger)
	if err := runner.Verify(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ %s matches %s\n", args[0], args[1])
	return nil
}
