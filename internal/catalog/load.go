package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Records []Record `yaml:"records"`
}

// Load reads a YAML catalog file and validates every record, including key
// uniqueness, so the collection is safe to hand to the grid engine.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Records))
	for _, r := range f.Records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		if _, dup := seen[r.Key]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate key %q", path, r.Key)
		}
		seen[r.Key] = struct{}{}
	}
	return f.Records, nil
}
