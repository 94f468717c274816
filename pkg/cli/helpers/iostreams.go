package helpers

import (
	"fmt"
	"os"

	"github.com/devantler-tech/wilder/pkg/svc/pkgmanager"
	"github.com/spf13/cobra"
)

// CommandStreams returns the command's standard streams for handing to a child process.
// Unless overridden with SetIn/SetOut/SetErr these are os.Stdin, os.Stdout and os.Stderr.
func CommandStreams(cmd *cobra.Command) pkgmanager.Streams {
	return pkgmanager.Streams{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// WorkingDir returns the current working directory, where the registry record lives.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return dir, nil
}
