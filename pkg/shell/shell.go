// pkg/shell/shell.go
package shell

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
)

// ExecFunc runs a command given as an argument list and returns its
// standard output as text. Production code uses ReadStdout; tests inject
// their own implementation.
type ExecFunc func(args []string) (string, error)

// ReadStdout runs the command and returns whatever it wrote to standard
// output. A non-zero exit status is not an error; only a failure to start
// the process is reported.
func ReadStdout(args []string) (string, error) {
	cmd := exec.Command(args[0], args[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", err
	}
	return out.String(), nil
}

// IsCmdAvailable probes a command by running it with its output drained.
// Exit status 0 means usable; any OS-level failure to start the process
// counts as unavailable rather than an error.
func IsCmdAvailable(args []string) bool {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}

// CombinedOutput runs the command and returns its combined stdout and
// stderr along with whether it exited zero.
func CombinedOutput(args []string) (string, bool) {
	out, err := exec.Command(args[0], args[1:]...).CombinedOutput()
	return string(out), err == nil
}

// Run executes the command with its output wired to the given writers,
// blocking until it exits.
func Run(args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
