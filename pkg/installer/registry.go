// pkg/installer/registry.go
package installer

import (
	"fmt"
	"sort"
)

// Registry associates installer backends with their string keys
type Registry struct {
	installers map[string]Installer
}

// NewRegistry creates an empty installer registry
func NewRegistry() *Registry {
	return &Registry{
		installers: make(map[string]Installer),
	}
}

// Set registers inst under key, replacing any previous registration
func (r *Registry) Set(key string, inst Installer) {
	r.installers[key] = inst
}

// Get returns the installer registered under key
func (r *Registry) Get(key string) (Installer, error) {
	inst, ok := r.installers[key]
	if !ok {
		return nil, fmt.Errorf("installer: no backend registered for key '%s'", key)
	}
	return inst, nil
}

// Keys returns the registered keys in sorted order
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.installers))
	for key := range r.installers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
