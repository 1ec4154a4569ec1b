// Package metadata loads and validates the declarative entity definitions
// that the DDL exporter renders. Definitions live in YAML documents (a single
// file or a directory of files); loading never touches a database or inspects
// compiled code.
package metadata
