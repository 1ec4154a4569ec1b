// Package verify compares the generated schema artifact against a committed
// baseline file byte-for-byte. It is the build-breaking side of schemaguard:
// a mismatch means the generated schema drifted from what is checked in, and
// usually that a schema migration is needed.
package verify

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tvalden/schemaguard/internal/checksum"
	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// Verifier performs read-only comparison of two files. It never writes.
type Verifier struct {
	logger schemaguard.Logger
}

// NewVerifier creates a new Verifier. A nil logger disables logging.
func NewVerifier(logger schemaguard.Logger) *Verifier {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Verifier{logger: logger}
}

// Verify compares the full contents of actualPath and expectedPath.
//
// An empty expectedPath or the NONE sentinel disables verification and
// succeeds trivially. A set but nonexistent baseline is a
// MissingBaselineError. Any byte-level difference, in length or content, is a
// MismatchError. Only exact byte equality succeeds.
func (v *Verifier) Verify(actualPath, expectedPath string) error {
	if expectedPath == "" || expectedPath == schemaguard.NoneSentinel {
		v.logger.Info("Not verifying generated schema (no verification file configured)")
		return nil
	}

	if _, err := os.Stat(expectedPath); err != nil {
		return &MissingBaselineError{Path: expectedPath}
	}

	v.logger.Info("Comparing generated schema to %s", expectedPath)

	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return fmt.Errorf("error verifying schema output against %s: %w", expectedPath, err)
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("error verifying schema output against %s: %w", expectedPath, err)
	}

	if !bytes.Equal(actual, expected) {
		offset, line := firstDifference(actual, expected)
		return &MismatchError{
			ActualPath:   actualPath,
			ExpectedPath: expectedPath,
			Offset:       offset,
			Line:         line,
			// A shared normalized fingerprint means the drift is formatting
			// or comments, not schema structure.
			FormattingOnly: checksum.Equivalent(actual, expected),
		}
	}

	v.logger.Verbose("Schema fingerprint %s", checksum.Raw(actual))
	v.logger.Info("Schema verification succeeded")
	return nil
}

// firstDifference locates the first byte at which the two contents diverge
// and the 1-based line it falls on. When one file is a prefix of the other,
// the divergence is at the shorter file's length.
func firstDifference(actual, expected []byte) (offset int, line int) {
	limit := len(actual)
	if len(expected) < limit {
		limit = len(expected)
	}

	offset = limit
	for i := 0; i < limit; i++ {
		if actual[i] != expected[i] {
			offset = i
			break
		}
	}

	line = 1 + bytes.Count(actual[:min(offset, len(actual))], []byte{'\n'})
	return offset, line
}
