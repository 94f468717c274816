package pkgmanager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/devantler-tech/wilder/pkg/utils/logging"
	"github.com/sirupsen/logrus"
)

// RegistryFlag is the flag prepended to every package manager invocation.
const RegistryFlag = "--registry"

// ExitError carries a non-zero exit code of the package manager.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("package manager exited with code %d", e.Code)
}

// Streams are the standard streams handed to the child process.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Runner starts the package manager with the registry flag prepended.
type Runner struct {
	streams Streams
	logger  logrus.FieldLogger
}

// NewRunner creates a Runner. Nil streams default to the process's standard streams.
func NewRunner(streams Streams, logger logrus.FieldLogger) *Runner {
	if streams.In == nil {
		streams.In = os.Stdin
	}

	if streams.Out == nil {
		streams.Out = os.Stdout
	}

	if streams.ErrOut == nil {
		streams.ErrOut = os.Stderr
	}

	if logger == nil {
		logger = logging.Discard()
	}

	return &Runner{streams: streams, logger: logger}
}

// BuildArgs returns args with --registry=<registry> prepended.
func BuildArgs(registry string, args []string) []string {
	return append([]string{RegistryFlag + "=" + registry}, args...)
}

// Run executes path with the registry flag and args, waiting for it to exit.
// A non-zero exit is returned as *ExitError. Interrupts received while the child runs
// are left to the child, which shares the terminal's process group.
func (r *Runner) Run(path, registry string, args []string) error {
	cmd := exec.Command(path, BuildArgs(registry, args)...) //nolint:gosec,noctx // path comes from Locator and the child is never cancelled
	cmd.Stdin = r.streams.In
	cmd.Stdout = r.streams.Out
	cmd.Stderr = r.streams.ErrOut
	cmd.Env = os.Environ()

	r.logger.WithField("args", cmd.Args[1:]).Debugf("running %s", path)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	defer signal.Stop(signals)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}

		return &ExitError{Code: code}
	}

	return fmt.Errorf("failed to run %s: %w", path, err)
}
