package metadata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// document is the top-level structure of one metadata YAML file.
type document struct {
	Entities []Entity `yaml:"entities"`
}

// Load reads entity definitions from path, which may be a single YAML file or
// a directory scanned recursively for .yaml/.yml files. Files are read in
// sorted path order and entities are sorted by table name afterwards, so the
// resulting Set does not depend on filesystem iteration order.
//
// Returns ErrMetadataNotFound when the path does not exist or yields no
// entities.
func Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no entity metadata at %s: %w", path, schemaguard.ErrMetadataNotFound)
		}
		return nil, fmt.Errorf("failed to read entity metadata at %s: %w", path, err)
	}

	var paths []string
	if info.IsDir() {
		paths, err = collectYAMLFiles(path)
		if err != nil {
			return nil, err
		}
	} else {
		paths = []string{path}
	}

	set := &Set{}
	for _, p := range paths {
		doc, err := loadFile(p)
		if err != nil {
			return nil, err
		}
		set.Entities = append(set.Entities, doc.Entities...)
	}

	if len(set.Entities) == 0 {
		return nil, fmt.Errorf("no entities defined under %s: %w", path, schemaguard.ErrMetadataNotFound)
	}

	sort.SliceStable(set.Entities, func(i, j int) bool {
		return set.Entities[i].TableName() < set.Entities[j].TableName()
	})

	return set, nil
}

func loadFile(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid entity metadata in %s: %v: %w", path, err, schemaguard.ErrInvalidConfig)
	}
	return &doc, nil
}

func collectYAMLFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for metadata: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
