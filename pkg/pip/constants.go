// pkg/pip/constants.go
package pip

const (
	// InstallerKey identifies the pip backend in an installer registry
	InstallerKey = "pip"

	// BreakSystemPackagesEnv overrides the externally-managed restriction
	// when set to a truthy value
	BreakSystemPackagesEnv = "PIP_BREAK_SYSTEM_PACKAGES"

	// PythonVersionEnv selects which major-version-suffixed binaries to
	// target (e.g. "3" for pip3/python3)
	PythonVersionEnv = "PYDEP_PYTHON_VERSION"

	// XDGConfigDirsEnv is the colon-separated list of directories searched
	// for pip configuration
	XDGConfigDirsEnv = "XDG_CONFIG_DIRS"

	// FallbackConfigPath is consulted when no XDG directory defines the
	// break-system-packages key
	FallbackConfigPath = "/etc/pip.conf"

	// DefaultPythonVersion is the major version targeted when no selector
	// is configured
	DefaultPythonVersion = "3"
)

// ExternallyManagedExplainer is the user-facing guidance returned when the
// externally-managed restriction blocks a system-wide install.
const ExternallyManagedExplainer = `
pydep installation of pip packages requires installing packages globally as root.
When using Python >= 3.11, PEP 668 compliance requires you to allow pip to install
alongside externally managed packages using the 'break-system-packages' option.
The recommended way to set this option when using pydep is to set the environment variable
PIP_BREAK_SYSTEM_PACKAGES=1
in your environment.
`
