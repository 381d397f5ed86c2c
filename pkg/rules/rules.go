// pkg/rules/rules.go
package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Entry represents a single rules/<key>.toml file mapping an abstract
// dependency key to the pip packages that satisfy it
type Entry struct {
	Key      string   `toml:"key"`
	Packages []string `toml:"packages"`
}

// Registry provides lookup into a directory of rule files
type Registry struct {
	dir string
}

// New creates a Registry pointed at the given rules directory
func New(dir string) *Registry {
	return &Registry{dir: dir}
}

// Resolve takes a dependency key and returns the pip package names that
// satisfy it.
// e.g. Resolve("python-yaml") -> ["PyYAML"]
func (r *Registry) Resolve(key string) ([]string, error) {
	entry, err := r.Load(key)
	if err != nil {
		return nil, err
	}
	if len(entry.Packages) == 0 {
		return nil, fmt.Errorf("rules: key '%s' defines no packages", key)
	}
	return entry.Packages, nil
}

// Load reads and parses rules/<key>.toml
func (r *Registry) Load(key string) (*Entry, error) {
	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("rules: directory '%s' not found", r.dir)
	}

	path := filepath.Join(r.dir, key+".toml")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: key '%s' not found", key)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("rules: failed to parse '%s': %w", key, err)
	}

	return &entry, nil
}
