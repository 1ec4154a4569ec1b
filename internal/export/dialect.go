package export

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// Dialect controls the dialect-specific parts of DDL rendering: identifier
// quoting, type spellings, and drop-statement shape.
type Dialect struct {
	// Name is the registry key ("postgres", "mysql", ...).
	Name string

	// QuoteOpen and QuoteClose delimit identifiers that need quoting.
	QuoteOpen  string
	QuoteClose string

	// Types rewrites well-known type spellings (keyed by the lowercase base
	// name, before any length suffix). Unlisted types pass through verbatim.
	Types map[string]string

	// DropSuffix is appended to DROP TABLE statements (e.g. " cascade").
	DropSuffix string
}

// Dialect registry.
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Register adds a dialect to the global registry.
// Called by builtin dialects in init().
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// GetDialect returns a dialect by name, or an error naming the registered
// dialects when the name is unknown.
func GetDialect(name string) (*Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s): %w",
			name, strings.Join(listLocked(), ", "), schemaguard.ErrInvalidConfig)
	}
	return d, nil
}

// ListDialects returns all registered dialect names, sorted.
func ListDialects() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// reservedWords are identifiers that always get quoted, regardless of dialect.
var reservedWords = map[string]bool{
	"order": true, "user": true, "group": true, "select": true,
	"table": true, "index": true, "where": true, "from": true,
	"key": true, "primary": true, "references": true,
}

// Quote returns the identifier, quoted when it is a reserved word or contains
// characters outside [a-z0-9_].
func (d *Dialect) Quote(ident string) string {
	if !needsQuoting(ident) {
		return ident
	}
	return d.QuoteOpen + ident + d.QuoteClose
}

func needsQuoting(ident string) bool {
	if reservedWords[strings.ToLower(ident)] {
		return true
	}
	for _, r := range ident {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return true
		}
	}
	return false
}

// TypeFor rewrites a column type spelling for this dialect. A length suffix
// like "(255)" is preserved through the rewrite.
func (d *Dialect) TypeFor(spec string) string {
	base := spec
	suffix := ""
	if i := strings.IndexByte(spec, '('); i >= 0 {
		base, suffix = spec[:i], spec[i:]
	}
	if mapped, ok := d.Types[strings.ToLower(strings.TrimSpace(base))]; ok {
		return mapped + suffix
	}
	return spec
}

func init() {
	Register(&Dialect{
		Name:       "postgres",
		QuoteOpen:  `"`,
		QuoteClose: `"`,
		Types: map[string]string{
			"datetime": "timestamp",
			"blob":     "bytea",
			"double":   "double precision",
		},
		DropSuffix: " cascade",
	})
	Register(&Dialect{
		Name:       "mysql",
		QuoteOpen:  "`",
		QuoteClose: "`",
		Types: map[string]string{
			"bytea":     "blob",
			"timestamp": "datetime",
			"text":      "longtext",
		},
	})
	Register(&Dialect{
		Name:       "sqlite",
		QuoteOpen:  `"`,
		QuoteClose: `"`,
		Types: map[string]string{
			"bigint": "integer",
		},
	})
}
