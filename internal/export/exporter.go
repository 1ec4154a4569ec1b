// Package export renders DDL text from validated entity metadata. It is the
// generation half of schemaguard: given an entity set and a dialect it writes
// the schema artifact that the fixup pipeline and verifier then operate on.
// No database connection is involved at any point.
package export

import (
	"fmt"
	"strings"

	"github.com/tvalden/schemaguard/internal/files"
	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/internal/metadata"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// DDLExporter renders an entity metadata set as DDL statements.
// It implements schemaguard.Exporter.
type DDLExporter struct {
	set     *metadata.Set
	dialect *Dialect
	logger  schemaguard.Logger
}

// NewDDLExporter creates an exporter for the given metadata set and dialect
// name. A nil logger disables logging.
func NewDDLExporter(set *metadata.Set, dialectName string, logger schemaguard.Logger) (*DDLExporter, error) {
	dialect, err := GetDialect(dialectName)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &DDLExporter{set: set, dialect: dialect, logger: logger}, nil
}

// Export renders the schema and writes it to opts.OutputPath in opts.Charset.
// Output is deterministic: entities render in table-name order, foreign keys
// and indexes after all tables.
func (e *DDLExporter) Export(opts schemaguard.ExportOptions) error {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = schemaguard.DefaultDelimiter
	}

	e.logger.Verbose("Rendering %d entities as %s DDL", len(e.set.Entities), e.dialect.Name)
	text := e.render(opts, delimiter)

	if err := files.WriteText(opts.OutputPath, text, opts.Charset); err != nil {
		return fmt.Errorf("error writing generated schema: %w", err)
	}
	e.logger.Info("Wrote generated schema to %s", opts.OutputPath)
	return nil
}

func (e *DDLExporter) render(opts schemaguard.ExportOptions, delimiter string) string {
	var statements []string

	if opts.Drop {
		// Drop in reverse creation order so referencing tables go first.
		for i := len(e.set.Entities) - 1; i >= 0; i-- {
			table := e.dialect.Quote(e.set.Entities[i].TableName())
			statements = append(statements, "drop table if exists "+table+e.dialect.DropSuffix)
		}
	}

	for i := range e.set.Entities {
		statements = append(statements, e.createTable(&e.set.Entities[i], opts.Format))
	}
	for i := range e.set.Entities {
		statements = append(statements, e.foreignKeys(&e.set.Entities[i])...)
	}
	for i := range e.set.Entities {
		statements = append(statements, e.indexes(&e.set.Entities[i])...)
	}

	separator := "\n"
	if opts.Format {
		separator = "\n\n"
	}

	var b strings.Builder
	for i, stmt := range statements {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(stmt)
		b.WriteString(delimiter)
	}
	b.WriteString("\n")
	return b.String()
}

func (e *DDLExporter) createTable(entity *metadata.Entity, format bool) string {
	var defs []string

	for _, col := range entity.Columns {
		defs = append(defs, e.columnDef(col))
	}

	var pk []string
	for _, col := range entity.Columns {
		if col.PrimaryKey {
			pk = append(pk, e.dialect.Quote(col.Name))
		}
	}
	if len(pk) > 0 {
		defs = append(defs, "primary key ("+strings.Join(pk, ", ")+")")
	}

	table := e.dialect.Quote(entity.TableName())
	if !format {
		return "create table " + table + " (" + strings.Join(defs, ", ") + ")"
	}
	return "create table " + table + " (\n    " + strings.Join(defs, ",\n    ") + "\n)"
}

func (e *DDLExporter) columnDef(col metadata.Column) string {
	var b strings.Builder
	b.WriteString(e.dialect.Quote(col.Name))
	b.WriteString(" ")
	b.WriteString(e.dialect.TypeFor(col.Type))

	if col.Default != "" {
		b.WriteString(" default ")
		b.WriteString(col.Default)
	}
	if col.NotNull || col.PrimaryKey {
		b.WriteString(" not null")
	}
	if col.Unique {
		b.WriteString(" unique")
	}
	return b.String()
}

func (e *DDLExporter) foreignKeys(entity *metadata.Entity) []string {
	var statements []string
	table := e.dialect.Quote(entity.TableName())

	for _, fk := range entity.ForeignKeys {
		cols := e.quoteAll(fk.Columns)
		refCols := e.quoteAll(fk.RefColumns)
		statements = append(statements, fmt.Sprintf(
			"alter table %s add constraint %s foreign key (%s) references %s (%s)",
			table,
			e.dialect.Quote(entity.ForeignKeyName(fk)),
			strings.Join(cols, ", "),
			e.dialect.Quote(fk.RefTable),
			strings.Join(refCols, ", ")))
	}
	return statements
}

func (e *DDLExporter) indexes(entity *metadata.Entity) []string {
	var statements []string
	table := e.dialect.Quote(entity.TableName())

	for _, ix := range entity.Indexes {
		unique := ""
		if ix.Unique {
			unique = "unique "
		}
		statements = append(statements, fmt.Sprintf(
			"create %sindex %s on %s (%s)",
			unique,
			e.dialect.Quote(entity.IndexName(ix)),
			table,
			strings.Join(e.quoteAll(ix.Columns), ", ")))
	}
	return statements
}

func (e *DDLExporter) quoteAll(idents []string) []string {
	quoted := make([]string, len(idents))
	for i, ident := range idents {
		quoted[i] = e.dialect.Quote(ident)
	}
	return quoted
}
