// Package main is the entry point for the Wilder application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/devantler-tech/wilder/internal/buildmeta"
	"github.com/devantler-tech/wilder/pkg/cli/cmd"
	"github.com/devantler-tech/wilder/pkg/svc/pkgmanager"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			panicMessage := fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack())
			notify.WriteMessage(notify.Message{
				Type:    notify.ErrorType,
				Content: panicMessage,
				Writer:  errWriter,
			})

			exitCode = 1
		}
	}()

	exitCode = runner(args)

	return exitCode
}

func runWithArgs(args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	return exitCodeFor(cmd.Execute(rootCmd), rootCmd.ErrOrStderr())
}

// exitCodeFor reports err and maps it to a process exit code. A package manager that
// exited non-zero has already reported its own failure, so only its code is kept.
func exitCodeFor(err error, errWriter io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *pkgmanager.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	notify.Errorf(errWriter, "%v", err)

	return 1
}
