// pkg/pip/manager.go
package pip

import (
	"fmt"
	"strings"

	"github.com/pydep-tools/pydep/pkg/installer"
	"github.com/pydep-tools/pydep/pkg/shell"
)

// Installer adapts the pip command line to the installer framework. It is
// stateless beyond configuration; every operation recomputes against the
// current environment.
type Installer struct {
	*installer.PackageManagerInstaller

	env    Environment
	policy *PolicyChecker

	// locate yields the pip command prefix, nil when unavailable
	locate func() []string

	// execFn overrides the production subprocess path; when set, the
	// `pip show` fallback during detection is skipped
	execFn shell.ExecFunc
}

// NewInstaller constructs the pip backend against the real system
// environment.
func NewInstaller() *Installer {
	return NewInstallerWithEnv(SystemEnvironment{})
}

// NewInstallerWithEnv constructs the pip backend against the given
// environment provider.
func NewInstallerWithEnv(env Environment) *Installer {
	major := pythonMajor(env)
	inst := &Installer{
		env:    env,
		policy: NewPolicyChecker(env, major),
		locate: func() []string { return CommandForVersion(major) },
	}
	inst.PackageManagerInstaller = installer.NewPackageManagerInstaller(inst.detect, true)

	// The override variable must survive the sudo boundary for pip to
	// see it.
	if inst.AsRoot && inst.SudoCommand != "" {
		inst.SudoCommand += " --preserve-env=" + BreakSystemPackagesEnv
	}
	return inst
}

// Register adds the pip backend to reg under its fixed key
func Register(reg *installer.Registry) {
	reg.Set(InstallerKey, NewInstaller())
}

// Key returns the registry key for the pip backend
func (i *Installer) Key() string {
	return InstallerKey
}

// Detect returns the subset of pkgs already installed, best effort: an
// unavailable pip yields an empty result rather than an error.
func (i *Installer) Detect(pkgs []string) []string {
	return i.detect(pkgs, i.execFn)
}

func (i *Installer) detect(pkgs []string, execFn shell.ExecFunc) []string {
	pipCmd := i.locate()
	if pipCmd == nil {
		return nil
	}

	fallbackToShow := false
	if execFn == nil {
		execFn = shell.ReadStdout
		fallbackToShow = true
	}

	out, err := execFn(append(pipCmd[:len(pipCmd):len(pipCmd)], "freeze"))
	if err != nil {
		return nil
	}

	frozen := make(map[string]struct{})
	for _, name := range ParseFreeze(out) {
		frozen[name] = struct{}{}
	}

	var found []string
	matched := make(map[string]struct{})
	for _, pkg := range pkgs {
		if _, ok := frozen[BaseName(pkg)]; ok {
			found = append(found, pkg)
			matched[pkg] = struct{}{}
		}
	}

	// Packages bundled with the interpreter do not appear in freeze
	// output but `pip show` still knows them.
	if fallbackToShow {
		for _, pkg := range pkgs {
			if _, ok := matched[pkg]; ok {
				continue
			}
			out, ok := shell.CombinedOutput(append(pipCmd[:len(pipCmd):len(pipCmd)], "show", BaseName(pkg)))
			if ok && strings.TrimSpace(out) != "" {
				found = append(found, pkg)
			}
		}
	}

	return found
}

// InstallCommands builds one ready-to-execute command per package in
// resolved that is not already installed. Commands are never batched, so
// the caller's execution loop isolates failures per package.
func (i *Installer) InstallCommands(resolved []string, opts installer.Options) ([][]string, error) {
	pipCmd := i.locate()
	if pipCmd == nil {
		return nil, &installer.InstallFailed{Key: InstallerKey, Reason: "pip is not installed"}
	}
	if !i.policy.Installable() {
		return nil, &installer.InstallFailed{Key: InstallerKey, Reason: ExternallyManagedExplainer}
	}

	packages := i.PackagesToInstall(resolved, opts.Reinstall, i.execFn)
	if len(packages) == 0 {
		return nil, nil
	}

	base := make([]string, 0, len(pipCmd)+4)
	base = append(base, pipCmd...)
	base = append(base, "install", "-U")
	if opts.Quiet {
		base = append(base, "-q")
	}
	if opts.Reinstall {
		base = append(base, "-I")
	}

	cmds := make([][]string, 0, len(packages))
	for _, pkg := range packages {
		cmd := make([]string, len(base), len(base)+1)
		copy(cmd, base)
		cmd = append(cmd, pkg)
		cmds = append(cmds, i.ElevatePriv(cmd))
	}
	return cmds, nil
}

// VersionStrings reports the installed pip and setuptools versions for
// diagnostics, queried through pip's own metadata.
func (i *Installer) VersionStrings() ([]string, error) {
	pipCmd := i.locate()
	if pipCmd == nil {
		return nil, &installer.InstallFailed{Key: InstallerKey, Reason: "pip is not installed"}
	}

	var versions []string
	for _, name := range []string{"pip", "setuptools"} {
		out, ok := shell.CombinedOutput(append(pipCmd[:len(pipCmd):len(pipCmd)], "show", name))
		if !ok {
			return nil, fmt.Errorf("pip: metadata for '%s' not found", name)
		}
		ver, found := ParseShowVersion(out)
		if !found {
			return nil, fmt.Errorf("pip: metadata for '%s' has no version", name)
		}
		versions = append(versions, fmt.Sprintf("%s %s", name, ver))
	}
	return versions, nil
}
