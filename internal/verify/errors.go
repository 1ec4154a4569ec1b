package verify

import (
	"fmt"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// MissingBaselineError reports that verification was requested but the
// baseline file does not exist.
type MissingBaselineError struct {
	Path string
}

func (e *MissingBaselineError) Error() string {
	return fmt.Sprintf("error verifying schema output: verification file %s does not exist", e.Path)
}

func (e *MissingBaselineError) Unwrap() error {
	return schemaguard.ErrBaselineMissing
}

// MismatchError reports a byte-level difference between the generated schema
// and the baseline. Offset is the first differing byte position; Line is the
// 1-based line in the generated artifact that the offset falls on.
type MismatchError struct {
	ActualPath   string
	ExpectedPath string
	Offset       int
	Line         int

	// FormattingOnly is true when the two files share a normalized
	// fingerprint: the difference is whitespace, case, or comments rather
	// than schema structure.
	FormattingOnly bool
}

func (e *MismatchError) Error() string {
	hint := "a schema migration may be needed"
	if e.FormattingOnly {
		hint = "contents are equivalent after normalization; regenerate the baseline"
	}
	return fmt.Sprintf(
		"generated schema %s differs from expected schema %s at byte %d (line %d); %s",
		e.ActualPath, e.ExpectedPath, e.Offset, e.Line, hint)
}

func (e *MismatchError) Unwrap() error {
	return schemaguard.ErrSchemaMismatch
}
