package metadata

import (
	"fmt"
	"strings"
	"unicode"
)

// Set is the complete collection of entity definitions an export run renders.
// Entities are kept sorted by table name so generated DDL is deterministic
// regardless of file layout.
type Set struct {
	Entities []Entity
}

// Entity describes one persistent class and the table it maps to.
type Entity struct {
	// Name is the logical entity name (e.g. "UserAccount"). Required.
	Name string `yaml:"name"`

	// Table is the table name. Derived from Name (snake_case) when empty.
	Table string `yaml:"table"`

	// ID is an optional stable UUID identifying the entity across renames.
	ID string `yaml:"id"`

	// Columns in declaration order. At least one is required.
	Columns []Column `yaml:"columns"`

	// Indexes to create after the table.
	Indexes []Index `yaml:"indexes"`

	// ForeignKeys declared on this table.
	ForeignKeys []ForeignKey `yaml:"foreignKeys"`
}

// Column describes one table column.
type Column struct {
	// Name is the column name. Required.
	Name string `yaml:"name"`

	// Type is the SQL type spelling (e.g. "bigint", "varchar(255)"). Required.
	// Dialects may rewrite well-known spellings.
	Type string `yaml:"type"`

	// PrimaryKey marks the column as part of the primary key.
	// Implies NOT NULL.
	PrimaryKey bool `yaml:"primaryKey"`

	// NotNull adds a NOT NULL constraint.
	NotNull bool `yaml:"notNull"`

	// Unique adds a UNIQUE constraint on this single column.
	Unique bool `yaml:"unique"`

	// Default is a literal DEFAULT expression, emitted verbatim.
	Default string `yaml:"default"`
}

// Index describes a secondary index.
type Index struct {
	// Name is the index name. Derived from table and columns when empty.
	Name string `yaml:"name"`

	// Columns are the indexed column names, in order. Required.
	Columns []string `yaml:"columns"`

	// Unique makes this a unique index.
	Unique bool `yaml:"unique"`
}

// ForeignKey describes a referential constraint.
type ForeignKey struct {
	// Name is the constraint name. Derived when empty.
	Name string `yaml:"name"`

	// Columns are the referencing columns on this table. Required.
	Columns []string `yaml:"columns"`

	// RefTable is the referenced table. Required.
	RefTable string `yaml:"refTable"`

	// RefColumns are the referenced columns. Required.
	RefColumns []string `yaml:"refColumns"`
}

// TableName returns the explicit table name or the snake_case form of the
// entity name.
func (e *Entity) TableName() string {
	if e.Table != "" {
		return e.Table
	}
	return toSnakeCase(e.Name)
}

// IndexName returns the explicit index name or a derived
// <table>_<col>_..._idx name.
func (e *Entity) IndexName(ix Index) string {
	if ix.Name != "" {
		return ix.Name
	}
	return fmt.Sprintf("%s_%s_idx", e.TableName(), strings.Join(ix.Columns, "_"))
}

// ForeignKeyName returns the explicit constraint name or a derived
// fk_<table>_<col>_... name.
func (e *Entity) ForeignKeyName(fk ForeignKey) string {
	if fk.Name != "" {
		return fk.Name
	}
	return fmt.Sprintf("fk_%s_%s", e.TableName(), strings.Join(fk.Columns, "_"))
}

// toSnakeCase converts CamelCase entity names to the snake_case table naming
// convention ("UserAccount" -> "user_account").
func toSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
