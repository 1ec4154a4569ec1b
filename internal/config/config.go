// Package config loads the schemaguard.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the on-disk shape of schemaguard.yaml. Paths are resolved
// relative to the project directory the file was loaded from.
type ProjectConfig struct {
	// Metadata is the entity definition file or directory.
	Metadata string `yaml:"metadata"`

	// Output is the generated schema file ("" or "NONE" exports to a
	// discarded temporary file).
	Output string `yaml:"output"`

	// Verify is the committed baseline ("" or "NONE" skips verification).
	Verify string `yaml:"verify"`

	Charset   string `yaml:"charset"`
	Dialect   string `yaml:"dialect"`
	Drop      bool   `yaml:"drop"`
	Format    bool   `yaml:"format"`
	Delimiter string `yaml:"delimiter"`

	// Properties are env-format files layered over this config
	// (charset/delimiter/format/drop/dialect overrides).
	Properties []string `yaml:"properties"`

	// Fixups are applied to the generated schema in order.
	Fixups []schemaguard.FixupConfig `yaml:"fixups"`
}

// Load reads schemaguard.yaml from projectPath.
func Load(projectPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectPath, schemaguard.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", configPath, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %v: %w", configPath, err, schemaguard.ErrInvalidConfig)
	}
	return &cfg, nil
}

// ToExportConfig converts the file configuration into an ExportConfig,
// resolving relative paths against projectPath. The sentinel values "" and
// "NONE" pass through unresolved since they are not paths.
func (c *ProjectConfig) ToExportConfig(projectPath string) schemaguard.ExportConfig {
	return schemaguard.ExportConfig{
		MetadataPath: resolvePath(projectPath, c.Metadata),
		OutputFile:   resolvePath(projectPath, c.Output),
		VerifyFile:   resolvePath(projectPath, c.Verify),
		Charset:      c.Charset,
		Dialect:      c.Dialect,
		Drop:         c.Drop,
		Format:       c.Format,
		Delimiter:    c.Delimiter,
		Fixups:       c.Fixups,
	}
}

// ResolveProperties returns the configured properties files resolved against
// projectPath.
func (c *ProjectConfig) ResolveProperties(projectPath string) []string {
	paths := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		paths[i] = resolvePath(projectPath, p)
	}
	return paths
}

func resolvePath(base, path string) string {
	if path == "" || path == schemaguard.NoneSentinel || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
