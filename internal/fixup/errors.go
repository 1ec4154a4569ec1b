package fixup

import (
	"fmt"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// ConfigError reports a rule that cannot be applied because its pattern is
// missing or is not a valid regular expression. Index is the 1-based position
// of the rule in the configured fixup list.
type ConfigError struct {
	Index int
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("error applying schema fixup #%d: %v", e.Index, e.Cause)
}

func (e *ConfigError) Unwrap() []error {
	return []error{e.Cause, schemaguard.ErrInvalidConfig}
}

// NotAppliedError reports a rule whose modificationRequired flag is set but
// whose application left the schema text unchanged.
type NotAppliedError struct {
	Index int
}

func (e *NotAppliedError) Error() string {
	return fmt.Sprintf("schema fixup #%d is marked modificationRequired but did not modify the schema", e.Index)
}

func (e *NotAppliedError) Unwrap() error {
	return schemaguard.ErrFixupNotApplied
}

// PersistenceError reports that the fixed-up schema could not be written back
// to disk. It is only raised after every rule has succeeded; rule failures
// take precedence and prevent the write from being attempted at all.
type PersistenceError struct {
	Path  string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error writing fixed-up schema to %s: %v", e.Path, e.Cause)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{e.Cause, schemaguard.ErrPersistence}
}
