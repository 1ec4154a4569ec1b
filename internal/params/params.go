package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// Recognized property keys.
const (
	KeyCharset   = "charset"
	KeyDelimiter = "delimiter"
	KeyFormat    = "format"
	KeyDrop      = "drop"
	KeyDialect   = "dialect"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
//
// Example:
//
//	props, err := params.ParseKeyValuePairs([]string{"charset=latin1", "drop=true"})
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("property %q is not in key=value format (example: --prop charset=latin1): %w",
				pair, schemaguard.ErrInvalidConfig)
		}
		if key == "" {
			return nil, fmt.Errorf("property has empty key: %q: %w", pair, schemaguard.ErrInvalidConfig)
		}
		result[key] = value
	}

	return result, nil
}

// LoadPropertiesFiles reads env-format properties files in order, with later
// files overriding earlier ones.
func LoadPropertiesFiles(paths []string) (map[string]string, error) {
	result := make(map[string]string)

	for _, path := range paths {
		props, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("error loading properties file %s: %w", path, err)
		}
		for k, v := range props {
			result[k] = v
		}
	}

	return result, nil
}

// Merge combines property maps with later maps taking precedence.
func Merge(maps ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Apply overlays recognized properties onto cfg. Unknown keys fail fast.
func Apply(cfg *schemaguard.ExportConfig, props map[string]string) error {
	for key, value := range props {
		switch key {
		case KeyCharset:
			cfg.Charset = value
		case KeyDelimiter:
			cfg.Delimiter = value
		case KeyDialect:
			cfg.Dialect = value
		case KeyFormat:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("property %s=%q is not a boolean: %w", key, value, schemaguard.ErrInvalidConfig)
			}
			cfg.Format = b
		case KeyDrop:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("property %s=%q is not a boolean: %w", key, value, schemaguard.ErrInvalidConfig)
			}
			cfg.Drop = b
		default:
			return fmt.Errorf("unknown property %q (recognized: %s, %s, %s, %s, %s): %w",
				key, KeyCharset, KeyDelimiter, KeyFormat, KeyDrop, KeyDialect, schemaguard.ErrInvalidConfig)
		}
	}
	return nil
}
