package schemaguard

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Export/verify completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration, metadata, or fixup pattern
	ExitFixupNotApplied  = 11 // A required fixup produced no modification
	ExitPersistenceError = 12 // Writing the fixed-up schema failed
	ExitBaselineMissing  = 13 // Verification baseline file does not exist
	ExitSchemaMismatch   = 14 // Generated schema differs from the baseline
)

const (
	// NoneSentinel disables an optional file setting. An output file of "NONE"
	// exports to a discarded temporary file; a verify file of "NONE" skips
	// verification. An empty string means the same thing in both positions.
	NoneSentinel = "NONE"

	// DefaultCharset is the encoding used to read and write the schema
	// artifact when no charset is configured.
	DefaultCharset = "utf-8"

	// DefaultDelimiter is the statement delimiter appended to each generated
	// DDL statement.
	DefaultDelimiter = ";"

	// DefaultDialect is the SQL dialect used when none is configured.
	DefaultDialect = "postgres"

	// ConfigFileName is the project configuration file schemaguard looks for
	// in the project directory.
	ConfigFileName = "schemaguard.yaml"
)
