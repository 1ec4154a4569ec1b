package fixup

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// Rule is a single fixup directive. A Rule is immutable once constructed;
// applying it is a pure function of (rule, input).
type Rule struct {
	// Pattern is the regular expression matched against the schema text.
	Pattern string

	// Replacement is substituted for every match. Capture group references
	// ($1, ${name}) are expanded. The zero value is an explicitly empty
	// replacement: config layers that coerce absent values to empty strings
	// mean "delete the match", never "missing setting".
	Replacement string

	// ModificationRequired makes the pipeline fail when applying this rule
	// does not change the schema text.
	ModificationRequired bool
}

// FromConfigs converts configured fixup directives into pipeline rules,
// preserving order.
func FromConfigs(cfgs []schemaguard.FixupConfig) []Rule {
	rules := make([]Rule, len(cfgs))
	for i, c := range cfgs {
		rules[i] = Rule{
			Pattern:              c.Pattern,
			Replacement:          c.Replacement,
			ModificationRequired: c.ModificationRequired,
		}
	}
	return rules
}

// Apply replaces all non-overlapping matches of the rule's pattern in input
// and returns the transformed text. The output equals the input when nothing
// matched. index is the rule's 1-based position, used only for diagnostics.
func (r Rule) Apply(index int, input string) (string, error) {
	if r.Pattern == "" {
		return "", &ConfigError{Index: index, Cause: errors.New("no pattern specified")}
	}

	regex, err := regexp.Compile(r.Pattern)
	if err != nil {
		return "", &ConfigError{Index: index, Cause: fmt.Errorf("invalid regular expression: %v", err)}
	}

	return regex.ReplaceAllString(input, r.Replacement), nil
}
