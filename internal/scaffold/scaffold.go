// Package scaffold initializes new schemaguard projects from embedded
// templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

//go:embed all:templates
var templatesFS embed.FS

// Scaffolder creates project skeletons from embedded templates.
type Scaffolder struct {
	logger schemaguard.Logger
}

// NewScaffolder creates a new Scaffolder. A nil logger disables logging.
func NewScaffolder(logger schemaguard.Logger) *Scaffolder {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scaffolder{logger: logger}
}

// CreateProject writes the named template into targetPath, substituting the
// project name into template files. The target must be empty or absent;
// existing files are never overwritten.
func (s *Scaffolder) CreateProject(projectName, templateName, targetPath string) error {
	templatePath := "templates/" + templateName
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		names, _ := ListTemplates()
		return fmt.Errorf("template %q not found (available: %s): %w",
			templateName, strings.Join(names, ", "), schemaguard.ErrInvalidConfig)
	}

	empty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("target directory %s is not empty; schemaguard init refuses to overwrite existing files: %w",
			targetPath, schemaguard.ErrInvalidConfig)
	}

	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	return fs.WalkDir(templatesFS, templatePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == templatePath {
			return nil
		}

		relPath, err := filepath.Rel(templatePath, path)
		if err != nil {
			return err
		}
		target := filepath.Join(targetPath, relPath)

		if d.IsDir() {
			s.logger.Verbose("Creating directory %s", relPath)
			return os.MkdirAll(target, 0o755)
		}

		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		s.logger.Verbose("Creating file %s", relPath)
		rendered := strings.ReplaceAll(string(content), "{{PROJECT_NAME}}", projectName)
		if err := os.WriteFile(target, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		return nil
	})
}

// ListTemplates returns the available template names, sorted.
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// isDirectoryEmpty reports whether path is absent, or an existing empty
// directory.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check target directory: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s exists but is not a directory: %w", path, schemaguard.ErrInvalidConfig)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read target directory: %w", err)
	}
	return len(entries) == 0, nil
}
