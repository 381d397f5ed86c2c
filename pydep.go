// pydep.go
package pydep

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pydep-tools/pydep/pkg/core"
	"github.com/pydep-tools/pydep/pkg/installer"
	"github.com/pydep-tools/pydep/pkg/pip"
	"github.com/pydep-tools/pydep/pkg/rules"
	"github.com/pydep-tools/pydep/pkg/shell"
)

// Re-export framework types for convenience
type (
	Config        = core.Config
	Options       = installer.Options
	Installer     = installer.Installer
	InstallFailed = installer.InstallFailed
)

// PipInstaller is the registry key of the pip backend
const PipInstaller = pip.InstallerKey

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager ties configuration, the rules registry, and the installer
// registry together
type Manager struct {
	config     *core.Config
	rules      *rules.Registry
	installers *installer.Registry
	logger     *log.Logger
}

// NewManager creates a manager with the pip backend registered
func NewManager(cfg *core.Config) *Manager {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stdout, "[PYDEP] ", log.LstdFlags)
	}

	reg := installer.NewRegistry()
	pipInst := pip.NewInstallerWithEnv(pip.SystemEnvironment{PythonVersion: cfg.PythonVersion})
	pipInst.AsRoot = cfg.AsRoot
	reg.Set(pip.InstallerKey, pipInst)

	return &Manager{
		config:     cfg,
		rules:      rules.New(cfg.RulesPath),
		installers: reg,
		logger:     logger,
	}
}

// Installers exposes the installer registry, e.g. for registering
// additional backends
func (m *Manager) Installers() *installer.Registry {
	return m.installers
}

// Resolve maps a dependency key to the pip package names that satisfy it
func (m *Manager) Resolve(key string) ([]string, error) {
	pkgs, err := m.rules.Resolve(key)
	if err != nil {
		return nil, &Error{Op: "resolve", Package: key, Err: err}
	}
	return pkgs, nil
}

// Check returns the requested packages that are not yet installed
func (m *Manager) Check(pkgs []string) ([]string, error) {
	inst, err := m.installers.Get(PipInstaller)
	if err != nil {
		return nil, err
	}

	installed := make(map[string]struct{})
	for _, pkg := range inst.Detect(pkgs) {
		installed[pkg] = struct{}{}
	}

	var missing []string
	for _, pkg := range pkgs {
		if _, ok := installed[pkg]; !ok {
			missing = append(missing, pkg)
		}
	}
	return missing, nil
}

// InstallCommands computes the install commands without executing them
func (m *Manager) InstallCommands(pkgs []string, opts Options) ([][]string, error) {
	inst, err := m.installers.Get(PipInstaller)
	if err != nil {
		return nil, err
	}
	if m.config.Quiet {
		opts.Quiet = true
	}
	return inst.InstallCommands(pkgs, opts)
}

// Install computes and runs the install commands, one subprocess per
// package, stopping at the first failure.
func (m *Manager) Install(pkgs []string, opts Options) error {
	cmds, err := m.InstallCommands(pkgs, opts)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		m.logger.Printf("Running: %v", cmd)
		if err := shell.Run(cmd, os.Stdout, os.Stderr); err != nil {
			return &Error{Op: "install", Package: cmd[len(cmd)-1], Err: err}
		}
	}
	return nil
}

// VersionStrings reports the backend toolchain versions for diagnostics
func (m *Manager) VersionStrings() ([]string, error) {
	inst, err := m.installers.Get(PipInstaller)
	if err != nil {
		return nil, err
	}
	strs, err := inst.VersionStrings()
	if err != nil {
		return nil, fmt.Errorf("querying versions: %w", err)
	}
	return strs, nil
}
