// pkg/installer/base.go
package installer

import (
	"os"
	"strings"

	"github.com/pydep-tools/pydep/pkg/shell"
)

// DefaultSudoCommand is the privilege-elevation prefix used when installs
// must run as root.
const DefaultSudoCommand = "sudo -H"

// overridable for tests
var geteuid = os.Geteuid

// PackageManagerInstaller carries the behavior shared by subprocess-driven
// backends: the injected detection function, privilege elevation, and the
// already-installed diff.
type PackageManagerInstaller struct {
	// DetectFn resolves which of the requested packages are installed
	DetectFn DetectFunc

	// SupportsDepends indicates the backend honors dependency ordering
	SupportsDepends bool

	// AsRoot controls whether install commands are elevated
	AsRoot bool

	// SudoCommand is the elevation prefix, split on whitespace
	SudoCommand string
}

// NewPackageManagerInstaller constructs the shared base with elevation
// enabled by default.
func NewPackageManagerInstaller(detect DetectFunc, supportsDepends bool) *PackageManagerInstaller {
	return &PackageManagerInstaller{
		DetectFn:        detect,
		SupportsDepends: supportsDepends,
		AsRoot:          true,
		SudoCommand:     DefaultSudoCommand,
	}
}

// ElevatePriv wraps cmd with the sudo prefix when the backend is configured
// to install as root and the current process is not already root.
func (p *PackageManagerInstaller) ElevatePriv(cmd []string) []string {
	if !p.AsRoot || p.SudoCommand == "" || geteuid() == 0 {
		return cmd
	}
	return append(strings.Fields(p.SudoCommand), cmd...)
}

// PackagesToInstall returns the requested packages that still need
// installing, preserving the order of resolved. When reinstall is set the
// detection step is skipped and everything is returned.
func (p *PackageManagerInstaller) PackagesToInstall(resolved []string, reinstall bool, execFn shell.ExecFunc) []string {
	if reinstall {
		return resolved
	}
	installed := make(map[string]struct{})
	for _, pkg := range p.DetectFn(resolved, execFn) {
		installed[pkg] = struct{}{}
	}
	var missing []string
	for _, pkg := range resolved {
		if _, ok := installed[pkg]; !ok {
			missing = append(missing, pkg)
		}
	}
	return missing
}
