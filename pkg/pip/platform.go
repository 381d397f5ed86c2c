// pkg/pip/platform.go
package pip

import (
	"github.com/pydep-tools/pydep/pkg/shell"
)

// Command returns the argument-list prefix for invoking pip on behalf of
// the configured Python major version, or nil when no candidate probes
// successfully. Callers must treat nil as "pip unavailable", not an error.
func Command(env Environment) []string {
	return CommandForVersion(pythonMajor(env))
}

// CommandForVersion locates a usable pip invocation for the given major
// version suffix. It first tries the version-suffixed pip binary, then
// falls back to running pip as a module of the version-suffixed
// interpreter.
func CommandForVersion(major string) []string {
	cmd := []string{"pip" + major}
	if shell.IsCmdAvailable(cmd) {
		return cmd
	}

	cmd = []string{"python" + major, "-m", "pip"}
	if shell.IsCmdAvailable(cmd) {
		return cmd
	}
	return nil
}
