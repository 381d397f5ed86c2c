// pkg/installer/types.go
package installer

import (
	"fmt"

	"github.com/pydep-tools/pydep/pkg/shell"
)

// DetectFunc returns the subset of pkgs that are already installed.
// A nil execFn selects the backend's production subprocess path.
type DetectFunc func(pkgs []string, execFn shell.ExecFunc) []string

// Options configures install-command construction
type Options struct {
	// Interactive is reserved for caller-side prompting; it does not
	// affect command construction.
	Interactive bool

	// Reinstall forces installation even for packages already present
	Reinstall bool

	// Quiet reduces the package manager's output
	Quiet bool
}

// Installer defines the capability surface every package-manager backend
// exposes to the surrounding framework
type Installer interface {
	// Key returns the registry key identifying the backend (e.g. "pip")
	Key() string

	// Detect returns the subset of pkgs found to be installed
	Detect(pkgs []string) []string

	// InstallCommands builds the ready-to-execute commands, one per
	// package, for the packages in resolved that still need installing
	InstallCommands(resolved []string, opts Options) ([][]string, error)

	// VersionStrings reports the backend's toolchain versions for
	// diagnostics
	VersionStrings() ([]string, error)
}

// InstallFailed reports that a backend could not construct install
// commands. The Key identifies the backend; the Reason is user-facing.
type InstallFailed struct {
	Key    string
	Reason string
}

func (e *InstallFailed) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}
