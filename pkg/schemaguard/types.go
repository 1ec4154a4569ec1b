package schemaguard

import (
	"errors"
	"fmt"
)

// FixupConfig is a single match/replace directive applied to the generated
// schema. Fixups run in configuration order; the replacement text produced by
// one fixup is visible to the next fixup's pattern matching.
type FixupConfig struct {
	// Pattern is a regular expression matched against the generated DDL.
	// Required. Must be valid Go regexp syntax.
	Pattern string `yaml:"pattern"`

	// Replacement is the text substituted for every match. Capture group
	// references ($1, ${name}) are expanded. An absent value is an explicit
	// empty-string replacement, not an error.
	Replacement string `yaml:"replacement"`

	// ModificationRequired fails the run when this fixup does not change the
	// schema text. Used to catch stale fixups after upstream generation changes.
	ModificationRequired bool `yaml:"modificationRequired"`
}

// ExportOptions are the generation options handed to an Exporter.
type ExportOptions struct {
	// OutputPath is the file the DDL artifact is written to.
	OutputPath string

	// Charset is the IANA name of the encoding used to write the artifact.
	// Empty means DefaultCharset.
	Charset string

	// Drop emits DROP TABLE statements before the CREATE statements.
	Drop bool

	// Format emits multi-line, indented statements instead of one statement
	// per line.
	Format bool

	// Delimiter terminates each statement. Empty means DefaultDelimiter.
	Delimiter string
}

// Exporter produces a DDL text artifact from entity metadata. The fixup and
// verification pipeline treats it as a black box: it only relies on the
// artifact existing at OutputPath after a successful Export.
type Exporter interface {
	Export(opts ExportOptions) error
}

// ExportConfig contains all parameters needed for an export operation.
type ExportConfig struct {
	// MetadataPath is a YAML file or directory of YAML files holding the
	// entity definitions the schema is generated from.
	MetadataPath string

	// OutputFile is where the generated schema is written. Empty string or
	// NoneSentinel exports to a temporary file that is discarded afterwards
	// (useful when only verification matters).
	OutputFile string

	// VerifyFile is the committed baseline the generated schema is compared
	// against byte-for-byte. Empty string or NoneSentinel skips verification.
	VerifyFile string

	// Charset is the IANA name of the artifact encoding (default utf-8).
	Charset string

	// Dialect selects the SQL dialect used for rendering (default postgres).
	Dialect string

	// Drop emits DROP TABLE statements before the CREATE statements.
	Drop bool

	// Format emits multi-line, indented DDL.
	Format bool

	// Delimiter terminates each statement (default ";").
	Delimiter string

	// Fixups are applied to the generated schema in order.
	Fixups []FixupConfig

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ExportConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ExportConfig) Validate() error {
	var errs []error

	if c.MetadataPath == "" {
		errs = append(errs, fmt.Errorf("MetadataPath is required: %w", ErrInvalidConfig))
	}

	// Missing fixup patterns are a configuration problem; catch them here
	// rather than midway through a pipeline run.
	for i, f := range c.Fixups {
		if f.Pattern == "" {
			errs = append(errs, fmt.Errorf("fixup #%d: no pattern specified: %w", i+1, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// ApplyDefaults fills in default values for optional fields.
func (c *ExportConfig) ApplyDefaults() {
	if c.Charset == "" {
		c.Charset = DefaultCharset
	}
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
	}
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
}
