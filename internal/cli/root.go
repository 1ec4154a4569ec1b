package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `+---------------------------+
|   s c h e m a g u a r d   |
+---------------------------+`

var rootCmd = &cobra.Command{
	Use:   "schemaguard",
	Short: "Schema generation with fixup and drift verification",
	Long: asciiLogo + `

schemaguard generates SQL DDL from entity metadata at build time, without a
database connection, applies your regex fixups to the generated text, and
verifies the result byte-for-byte against a committed baseline. A mismatch
fails the build, so schema drift is caught before it reaches a migration.

No database. No reflection magic. Just metadata in, deterministic DDL out.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or metadata
  11 - Required fixup did not modify the schema
  12 - Failed to persist the fixed-up schema
  13 - Verification baseline file not found
  14 - Generated schema does not match the baseline`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for schemaguard")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
