package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvalden/schemaguard/internal/config"
	"github.com/tvalden/schemaguard/internal/export"
	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/internal/metadata"
	"github.com/tvalden/schemaguard/internal/params"
	"github.com/tvalden/schemaguard/internal/services"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

var exportCmd = &cobra.Command{
	Use:   "export <project_path>",
	Short: "Generate the schema, apply fixups, verify against the baseline",
	Long: `Export runs the full pipeline for the project in the specified directory.

The export command:
1. Loads entity metadata from YAML files (no database connection needed)
2. Renders CREATE TABLE, foreign key, and index statements for the dialect
3. Applies the configured regex fixups to the generated text, in order
4. Compares the result byte-for-byte against the committed baseline

Configuration is read from schemaguard.yaml in the project directory. CLI
flags override the file; --prop overrides both.

Output and verify destinations accept the sentinel NONE (or empty) to export
to a discarded temporary file, or to skip verification.

Examples:
  # Full pipeline from schemaguard.yaml
  schemaguard export .

  # Verify only, discarding the generated file
  schemaguard export . --output NONE

  # Regenerate the baseline itself
  schemaguard export . --output src/schema/create.sql --verify NONE

  # Layered properties (later files override earlier ones, --prop wins)
  schemaguard export . \
    --properties base.env \
    --properties ci.env \
    --prop charset=latin1`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

type exportFlagValues struct {
	metadata, output, verify    string
	charset, dialect, delimiter string
	drop, format                bool
	properties, props           []string
}

var exportFlags exportFlagValues

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlags.metadata, "metadata", "m", "",
		"Entity metadata file or directory (overrides schemaguard.yaml)")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "",
		"Generated schema file\n"+
			"NONE exports to a discarded temporary file (verify-only runs)")
	exportCmd.Flags().StringVar(&exportFlags.verify, "verify", "",
		"Committed baseline to compare against byte-for-byte\n"+
			"NONE skips verification")
	exportCmd.Flags().StringVar(&exportFlags.charset, "charset", "",
		"IANA charset of the generated artifact (default: utf-8)")
	exportCmd.Flags().StringVar(&exportFlags.dialect, "dialect", "",
		fmt.Sprintf("SQL dialect: %v (default: %s)", export.ListDialects(), schemaguard.DefaultDialect))
	exportCmd.Flags().BoolVar(&exportFlags.drop, "drop", false,
		"Emit drop table statements before the create statements")
	exportCmd.Flags().BoolVar(&exportFlags.format, "format", false,
		"Emit multi-line, indented statements instead of one per line")
	exportCmd.Flags().StringVar(&exportFlags.delimiter, "delimiter", "",
		"Statement terminator (default: \";\")")
	exportCmd.Flags().StringSliceVar(&exportFlags.properties, "properties", nil,
		"Load properties from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, --prop overrides all")
	exportCmd.Flags().StringSliceVar(&exportFlags.props, "prop", nil,
		"Properties as key=value pairs (can be specified multiple times)\n"+
			"Recognized keys: charset, delimiter, format, drop, dialect\n"+
			"Example: --prop charset=latin1 --prop drop=true")
}

// buildExportConfig layers schemaguard.yaml, properties files, CLI flags, and
// --prop pairs into the final ExportConfig. Extracted for testability.
func buildExportConfig(cmd *cobra.Command, projectPath string, verbose bool) (schemaguard.ExportConfig, error) {
	projectCfg, err := config.Load(projectPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			if exportFlags.metadata == "" {
				return schemaguard.ExportConfig{}, fmt.Errorf(
					"no %s found in %s and no --metadata flag given: %w",
					schemaguard.ConfigFileName, projectPath, schemaguard.ErrInvalidConfig)
			}
			projectCfg = &config.ProjectConfig{}
		} else {
			return schemaguard.ExportConfig{}, err
		}
	}

	cfg := projectCfg.ToExportConfig(projectPath)
	cfg.Verbose = verbose

	if exportFlags.metadata != "" {
		cfg.MetadataPath = exportFlags.metadata
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputFile = exportFlags.output
	}
	if cmd.Flags().Changed("verify") {
		cfg.VerifyFile = exportFlags.verify
	}
	if exportFlags.charset != "" {
		cfg.Charset = exportFlags.charset
	}
	if exportFlags.dialect != "" {
		cfg.Dialect = exportFlags.dialect
	}
	if exportFlags.delimiter != "" {
		cfg.Delimiter = exportFlags.delimiter
	}
	if cmd.Flags().Changed("drop") {
		cfg.Drop = exportFlags.drop
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = exportFlags.format
	}

	// Properties overlay: schemaguard.yaml properties files, then --properties
	// files, then --prop pairs.
	propFiles := append(projectCfg.ResolveProperties(projectPath), exportFlags.properties...)
	fileProps, err := params.LoadPropertiesFiles(propFiles)
	if err != nil {
		return schemaguard.ExportConfig{}, err
	}
	cliProps, err := params.ParseKeyValuePairs(exportFlags.props)
	if err != nil {
		return schemaguard.ExportConfig{}, err
	}
	if err := params.Apply(&cfg, params.Merge(fileProps, cliProps)); err != nil {
		return schemaguard.ExportConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return schemaguard.ExportConfig{}, err
	}
	cfg.ApplyDefaults()

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Export configuration:\n")
		fmt.Fprintf(os.Stderr, "  Metadata: %s\n", cfg.MetadataPath)
		fmt.Fprintf(os.Stderr, "  Output: %s\n", displayPath(cfg.OutputFile))
		fmt.Fprintf(os.Stderr, "  Verify: %s\n", displayPath(cfg.VerifyFile))
		fmt.Fprintf(os.Stderr, "  Dialect: %s\n", cfg.Dialect)
		fmt.Fprintf(os.Stderr, "  Charset: %s\n", cfg.Charset)
		fmt.Fprintf(os.Stderr, "  Fixups: %d\n", len(cfg.Fixups))
	}

	return cfg, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildExportConfig(cmd, args[0], verbose)
	if err != nil {
		return err
	}

	set, err := metadata.Load(cfg.MetadataPath)
	if err != nil {
		return err
	}
	if err := metadata.Validate(set); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	exporter, err := export.NewDDLExporter(set, cfg.Dialect, logger)
	if err != nil {
		return err
	}

	runner := services.NewRunner(exporter, logger)
	if err := runner.Export(cfg); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "✓ Schema export completed")
	return nil
}

func displayPath(path string) string {
	if path == "" || path == schemaguard.NoneSentinel {
		return "(none)"
	}
	return path
}
