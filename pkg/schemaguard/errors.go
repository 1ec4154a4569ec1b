package schemaguard

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := runner.Export(cfg)
//	if errors.Is(err, schemaguard.ErrSchemaMismatch) {
//	    // Generated schema drifted from the committed baseline
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid,
	// including fixup rules with missing or malformed patterns.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFixupNotApplied indicates a fixup marked as modificationRequired
	// produced no change in the generated schema.
	ErrFixupNotApplied = errors.New("required fixup not applied")

	// ErrPersistence indicates writing the fixed-up schema back to disk failed
	// after every fixup succeeded.
	ErrPersistence = errors.New("persistence failed")

	// ErrBaselineMissing indicates verification was requested but the baseline
	// file does not exist or is not readable.
	ErrBaselineMissing = errors.New("baseline file missing")

	// ErrSchemaMismatch indicates the generated schema differs from the
	// committed baseline. This is the intentional build-breaking signal that a
	// schema migration may be needed.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrMetadataNotFound indicates no entity metadata documents were found at
	// the configured location.
	ErrMetadataNotFound = errors.New("entity metadata not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFixupNotApplied):
		return ExitFixupNotApplied
	case errors.Is(err, ErrPersistence):
		return ExitPersistenceError
	case errors.Is(err, ErrBaselineMissing):
		return ExitBaselineMissing
	case errors.Is(err, ErrSchemaMismatch):
		return ExitSchemaMismatch
	case errors.Is(err, ErrMetadataNotFound):
		return ExitConfigError
	}

	return ExitGeneralError
}
