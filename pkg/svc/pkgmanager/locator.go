package pkgmanager

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrExecutableNotFound is returned when the package manager is neither on PATH nor installed locally.
var ErrExecutableNotFound = errors.New("package manager is not installed or not on PATH")

// Locator finds package manager executables.
type Locator struct {
	lookPath func(string) (string, error)
	workDir  string
}

// NewLocator creates a Locator that searches PATH and then workDir/node_modules/.bin.
func NewLocator(workDir string) *Locator {
	return &Locator{lookPath: exec.LookPath, workDir: workDir}
}

// NewLocatorWithLookPath creates a Locator with a custom PATH lookup.
func NewLocatorWithLookPath(workDir string, lookPath func(string) (string, error)) *Locator {
	return &Locator{lookPath: lookPath, workDir: workDir}
}

// Locate returns the path of the named executable.
func (l *Locator) Locate(name string) (string, error) {
	path, err := l.lookPath(name)
	if err == nil {
		return path, nil
	}

	for _, candidate := range l.localCandidates(name) {
		info, statErr := os.Stat(candidate)
		if statErr == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
}

// localCandidates lists project-local installs of name.
func (l *Locator) localCandidates(name string) []string {
	binDir := filepath.Join(l.workDir, "node_modules", ".bin")

	if runtime.GOOS == "windows" {
		return []string{filepath.Join(binDir, name+".cmd"), filepath.Join(binDir, name)}
	}

	return []string{filepath.Join(binDir, name)}
}
