package fixup

import (
	"fmt"

	"github.com/tvalden/schemaguard/internal/files"
	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// Pipeline applies an ordered list of rules to a schema artifact on disk.
// A Pipeline is created fresh per invocation site and holds no state between
// runs.
type Pipeline struct {
	logger schemaguard.Logger
}

// NewPipeline creates a new fixup pipeline. A nil logger disables logging.
func NewPipeline(logger schemaguard.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Pipeline{logger: logger}
}

// Run reads the file at artifactPath as text in charset, applies every rule
// in order, and writes the result back using the same charset.
//
// An empty rule list is a no-op; the file is not even opened. On any rule
// failure the on-disk file is left exactly as it was when Run was invoked:
// all transformation happens in memory and the single write-back only occurs
// once every rule has succeeded. A failure of that final write is reported as
// a PersistenceError; by construction it can only be the first (and only)
// error of the run.
func (p *Pipeline) Run(rules []Rule, artifactPath, charset string) error {
	if len(rules) == 0 {
		return nil
	}

	p.logger.Info("Applying %d fixup(s) to %s", len(rules), artifactPath)

	current, err := files.ReadText(artifactPath, charset)
	if err != nil {
		return fmt.Errorf("error applying schema fixups to %s: %w", artifactPath, err)
	}

	for i, rule := range rules {
		index := i + 1
		p.logger.Verbose("Applying fixup #%d to generated schema", index)

		next, err := rule.Apply(index, current)
		if err != nil {
			return err
		}

		// Exact text equality; any byte difference counts as a modification.
		if next == current {
			if rule.ModificationRequired {
				return &NotAppliedError{Index: index}
			}
			continue
		}
		current = next
	}

	if err := files.WriteText(artifactPath, current, charset); err != nil {
		return &PersistenceError{Path: artifactPath, Cause: err}
	}
	return nil
}
