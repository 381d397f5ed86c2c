// pkg/pip/types.go
package pip

import (
	"os"

	"github.com/pydep-tools/pydep/pkg/shell"
)

// Version is a Python interpreter version
type Version struct {
	Major int
	Minor int
}

// Before reports whether v sorts strictly before other
func (v Version) Before(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// Environment abstracts the environment-variable and interpreter lookups
// the locator and policy check perform, so both stay testable without
// touching real process state.
type Environment interface {
	// Getenv returns the value of an environment variable, empty if unset
	Getenv(key string) string

	// InterpreterVersion reports the version of the python interpreter for
	// the given major version suffix. ok is false when the interpreter
	// cannot be queried.
	InterpreterVersion(major string) (v Version, ok bool)
}

// SystemEnvironment reads the real process environment and probes the real
// interpreter. A non-empty PythonVersion takes precedence over the
// selector variable.
type SystemEnvironment struct {
	PythonVersion string
}

func (e SystemEnvironment) Getenv(key string) string {
	if key == PythonVersionEnv && e.PythonVersion != "" {
		return e.PythonVersion
	}
	return os.Getenv(key)
}

func (e SystemEnvironment) InterpreterVersion(major string) (Version, bool) {
	// Old interpreters print the version banner on stderr, so read both.
	out, ok := shell.CombinedOutput([]string{"python" + major, "--version"})
	if !ok {
		return Version{}, false
	}
	return ParsePythonVersion(out)
}

// pythonMajor resolves the configured major-version indicator
func pythonMajor(env Environment) string {
	if v := env.Getenv(PythonVersionEnv); v != "" {
		return v
	}
	return DefaultPythonVersion
}
