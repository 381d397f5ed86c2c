// pkg/pip/policy.go
package pip

import (
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// PEP 668 enforcement begins with Python 3.11
var externallyManagedSince = Version{Major: 3, Minor: 11}

// PolicyChecker decides whether system-wide pip installs are permitted
// under the externally-managed-environment restriction. Interpreters
// whose package directory is controlled by an OS package manager block
// direct installation unless explicitly overridden.
type PolicyChecker struct {
	Env         Environment
	PythonMajor string

	// FallbackConfig is consulted when no XDG directory defines the key
	FallbackConfig string
}

// NewPolicyChecker constructs a checker against the given environment
func NewPolicyChecker(env Environment, major string) *PolicyChecker {
	return &PolicyChecker{
		Env:            env,
		PythonMajor:    major,
		FallbackConfig: FallbackConfigPath,
	}
}

// Installable reports whether pip may write to the system environment.
// The sources are consulted in order, short-circuiting on the first
// verdict: interpreter version, override variable, XDG config
// directories, then the fixed fallback config file.
func (p *PolicyChecker) Installable() bool {
	// The restriction does not exist before Python 3.11.
	if v, ok := p.Env.InterpreterVersion(p.PythonMajor); ok && v.Before(externallyManagedSince) {
		return true
	}

	switch strings.ToLower(p.Env.Getenv(BreakSystemPackagesEnv)) {
	case "yes", "1", "true":
		return true
	}

	// Same configuration directories as pip itself consults, in the
	// order listed; the first file defining the key wins.
	if dirs := p.Env.Getenv(XDGConfigDirsEnv); dirs != "" {
		for _, dir := range strings.Split(dirs, ":") {
			if v, defined := breakSystemPackages(filepath.Join(dir, "pip", "pip.conf")); defined {
				return v
			}
		}
	}

	if v, defined := breakSystemPackages(p.FallbackConfig); defined {
		return v
	}

	// With no explicit configuration, global installation is blocked.
	return false
}

// breakSystemPackages reads the install.break-system-packages key from an
// INI-format pip config file. Missing or malformed files are treated as
// "key absent", never an error.
func breakSystemPackages(path string) (value, defined bool) {
	cfg, err := ini.Load(path)
	if err != nil {
		return false, false
	}
	sec := cfg.Section("install")
	if !sec.HasKey("break-system-packages") {
		return false, false
	}
	v, err := sec.Key("break-system-packages").Bool()
	if err != nil {
		return false, false
	}
	return v, true
}
