// Package params layers generation-property overrides onto an export
// configuration.
//
// Properties arrive from env-format files (--properties, parsed with
// godotenv) and from key=value CLI pairs (--prop). Later sources override
// earlier ones, and CLI pairs override all files. Only a fixed set of keys is
// recognized (charset, delimiter, format, drop, dialect); anything else is a
// configuration error so typos fail the build instead of being silently
// ignored.
package params
