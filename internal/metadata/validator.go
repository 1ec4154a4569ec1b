package metadata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// ValidationResult contains the outcome of metadata validation.
// If Valid is false, Errors contains human-readable error messages.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// AddError appends an error message to the validation result and marks it as invalid.
func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.Valid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// ErrorString returns all validation errors joined with semicolons.
// Returns empty string if no errors.
func (v *ValidationResult) ErrorString() string {
	return strings.Join(v.Errors, "; ")
}

// ValidateSet checks structural consistency of a metadata set: unique names,
// required fields, well-formed UUIDs, and that index and foreign key column
// references resolve against the declared columns and tables.
func ValidateSet(set *Set) ValidationResult {
	result := ValidationResult{Valid: true}

	tables := make(map[string]map[string]bool) // table -> column set
	names := make(map[string]bool)
	ids := make(map[string]string) // uuid -> entity name

	for _, e := range set.Entities {
		if e.Name == "" {
			result.AddError("entity with table %q has no name", e.Table)
			continue
		}
		if names[e.Name] {
			result.AddError("duplicate entity name %q", e.Name)
		}
		names[e.Name] = true

		table := e.TableName()
		if _, dup := tables[table]; dup {
			result.AddError("entity %q: duplicate table name %q", e.Name, table)
		}

		if e.ID != "" {
			id, err := uuid.Parse(e.ID)
			if err != nil {
				result.AddError("entity %q: invalid id %q: %v", e.Name, e.ID, err)
			} else if other, dup := ids[id.String()]; dup {
				result.AddError("entity %q: id %s already used by entity %q", e.Name, id, other)
			} else {
				ids[id.String()] = e.Name
			}
		}

		cols := make(map[string]bool)
		if len(e.Columns) == 0 {
			result.AddError("entity %q has no columns", e.Name)
		}
		for _, c := range e.Columns {
			if c.Name == "" {
				result.AddError("entity %q: column with type %q has no name", e.Name, c.Type)
				continue
			}
			if cols[c.Name] {
				result.AddError("entity %q: duplicate column %q", e.Name, c.Name)
			}
			cols[c.Name] = true
			if c.Type == "" {
				result.AddError("entity %q: column %q has no type", e.Name, c.Name)
			}
		}
		tables[table] = cols
	}

	// Second pass: index and foreign key references need the full table map.
	for _, e := range set.Entities {
		cols := tables[e.TableName()]

		for _, ix := range e.Indexes {
			if len(ix.Columns) == 0 {
				result.AddError("entity %q: index %q has no columns", e.Name, ix.Name)
			}
			for _, col := range ix.Columns {
				if !cols[col] {
					result.AddError("entity %q: index %q references unknown column %q", e.Name, e.IndexName(ix), col)
				}
			}
		}

		for _, fk := range e.ForeignKeys {
			name := e.ForeignKeyName(fk)
			if len(fk.Columns) == 0 {
				result.AddError("entity %q: foreign key %q has no columns", e.Name, name)
			}
			for _, col := range fk.Columns {
				if !cols[col] {
					result.AddError("entity %q: foreign key %q references unknown column %q", e.Name, name, col)
				}
			}
			if fk.RefTable == "" {
				result.AddError("entity %q: foreign key %q has no refTable", e.Name, name)
				continue
			}
			refCols, ok := tables[fk.RefTable]
			if !ok {
				result.AddError("entity %q: foreign key %q references unknown table %q", e.Name, name, fk.RefTable)
				continue
			}
			if len(fk.RefColumns) == 0 {
				result.AddError("entity %q: foreign key %q has no refColumns", e.Name, name)
			}
			for _, col := range fk.RefColumns {
				if !refCols[col] {
					result.AddError("entity %q: foreign key %q references unknown column %s.%s", e.Name, name, fk.RefTable, col)
				}
			}
			if len(fk.RefColumns) > 0 && len(fk.Columns) != len(fk.RefColumns) {
				result.AddError("entity %q: foreign key %q has %d columns but %d refColumns",
					e.Name, name, len(fk.Columns), len(fk.RefColumns))
			}
		}
	}

	return result
}

// Validate runs ValidateSet and converts a failed result into a configuration
// error suitable for ExitCodeForError.
func Validate(set *Set) error {
	result := ValidateSet(set)
	if result.Valid {
		return nil
	}
	return fmt.Errorf("invalid entity metadata: %s: %w", result.ErrorString(), schemaguard.ErrInvalidConfig)
}
