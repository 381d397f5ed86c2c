// pkg/pip/manager_test.go
package pip

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydep-tools/pydep/pkg/installer"
)

// newTestInstaller wires a pip installer against a fake environment, a
// stubbed locator, and a canned freeze output. Elevation is disabled so
// command assertions stay independent of the host's effective uid.
func newTestInstaller(env *fakeEnv, pipCmd []string, freeze string) *Installer {
	inst := NewInstallerWithEnv(env)
	inst.AsRoot = false
	inst.policy.FallbackConfig = filepath.Join("testdata", "no-such-pip.conf")
	inst.locate = func() []string { return pipCmd }
	inst.execFn = func(args []string) (string, error) {
		return freeze, nil
	}
	return inst
}

func permissiveEnv() *fakeEnv {
	return &fakeEnv{
		vars:      map[string]string{},
		version:   Version{Major: 3, Minor: 10},
		versionOK: true,
	}
}

func TestDetectSubsetOfInput(t *testing.T) {
	inst := newTestInstaller(permissiveEnv(), []string{"pip3"}, "foo==1.0\nqux==2.0")
	assert.Equal(t, []string{"foo"}, inst.Detect([]string{"foo", "bar", "baz"}))
}

func TestDetectMatchesBaseName(t *testing.T) {
	// The pinned candidate matches on its pre-"==" segment and the
	// originally requested string is reported back.
	inst := newTestInstaller(permissiveEnv(), []string{"pip3"}, "foo==1.0")
	assert.Equal(t, []string{"foo==3.0"}, inst.Detect([]string{"foo==3.0"}))
}

func TestDetectExtrasMarker(t *testing.T) {
	inst := newTestInstaller(permissiveEnv(), []string{"pip3"}, "foo==1.0")
	assert.Equal(t, []string{"foo[extra]"}, inst.Detect([]string{"foo[extra]", "bar"}))
}

func TestDetectUnavailablePip(t *testing.T) {
	inst := newTestInstaller(permissiveEnv(), nil, "")
	assert.Empty(t, inst.Detect([]string{"foo"}))
}

func TestDetectRunsFreeze(t *testing.T) {
	inst := newTestInstaller(permissiveEnv(), []string{"python3", "-m", "pip"}, "")
	var got []string
	inst.execFn = func(args []string) (string, error) {
		got = args
		return "", nil
	}
	inst.Detect([]string{"foo"})
	assert.Equal(t, []string{"python3", "-m", "pip", "freeze"}, got)
}

func TestInstallCommandsQuiet(t *testing.T) {
	inst := newTestInstaller(permissiveEnv(), []string{"pip3"}, "")
	cmds, err := inst.InstallCommands([]string{"foo", "bar"}, installer.Options{Quiet: true})
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"pip3", "install", "-U", "-q", "foo"}, cmds[0])
	assert.Equal(t, []string{"pip3", "install", "-U", "-q", "bar"}, cmds[1])
}

func TestInstallCommandsReinstall(t *testing.T) {
	// Reinstall skips detection entirely and adds -I.
	inst := newTestInstaller(permissiveEnv(), []string{"pip3"}, "foo==1.0")
	cmds, err := inst.InstallCommands([]string{"foo"}, installer.Options{Reinstall: true})
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{"pip3", "install", "-U", "-I", "foo"}, cmds[0])
}

func TestInstallCommandsAllInstalled(t *testing.T) {
	inst := newTestInstaller(permissiveEnv(), []string{"pip3"}, "foo==1.0\nbar==2.0")
	cmds, err := inst.InstallCommands([]string{"foo", "bar"}, installer.Options{})
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestInstallCommandsPipMissing(t *testing.T) {
	env := permissiveEnv()
	inst := newTestInstaller(env, nil, "")
	// Neither policy nor detection may run when the locator fails.
	inst.execFn = func(args []string) (string, error) {
		t.Fatal("detection must not run without a pip command")
		return "", nil
	}

	_, err := inst.InstallCommands([]string{"foo"}, installer.Options{})
	var failed *installer.InstallFailed
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, InstallerKey, failed.Key)
	assert.Equal(t, "pip is not installed", failed.Reason)
}

func TestInstallCommandsExternallyManaged(t *testing.T) {
	env := &fakeEnv{
		vars:      map[string]string{},
		version:   Version{Major: 3, Minor: 11},
		versionOK: true,
	}
	inst := newTestInstaller(env, []string{"pip3"}, "")

	_, err := inst.InstallCommands([]string{"foo"}, installer.Options{})
	var failed *installer.InstallFailed
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, InstallerKey, failed.Key)
	assert.Contains(t, failed.Reason, BreakSystemPackagesEnv)
}

func TestInstallCommandsOverrideHonored(t *testing.T) {
	env := &fakeEnv{
		vars:      map[string]string{BreakSystemPackagesEnv: "1"},
		version:   Version{Major: 3, Minor: 12},
		versionOK: true,
	}
	inst := newTestInstaller(env, []string{"pip3"}, "")

	cmds, err := inst.InstallCommands([]string{"foo"}, installer.Options{})
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{"pip3", "install", "-U", "foo"}, cmds[0])
}

func TestSudoCommandPreservesOverride(t *testing.T) {
	inst := NewInstallerWithEnv(permissiveEnv())
	assert.Equal(t,
		installer.DefaultSudoCommand+" --preserve-env="+BreakSystemPackagesEnv,
		inst.SudoCommand)
}

func TestRegister(t *testing.T) {
	reg := installer.NewRegistry()
	Register(reg)

	inst, err := reg.Get(InstallerKey)
	require.NoError(t, err)
	assert.Equal(t, InstallerKey, inst.Key())
}

func TestCommandForUnknownVersion(t *testing.T) {
	// A major version no system ships guarantees both probes fail.
	assert.Nil(t, CommandForVersion("999pydep"))
}

func TestCommandUsesVersionSelector(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{PythonVersionEnv: "999pydep"}}
	assert.Nil(t, Command(env))
}
