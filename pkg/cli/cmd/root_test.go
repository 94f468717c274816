package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/devantler-tech/wilder/pkg/cli/cmd"
	"github.com/devantler-tech/wilder/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/devantler-tech/wilder/pkg/registry"
	"github.com/devantler-tech/wilder/pkg/svc/pkgmanager"
	fcolor "github.com/fatih/color"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotOnPath = errors.New("executable file not found in $PATH")

func TestMain(m *testing.M) {
	fcolor.NoColor = true

	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

// withPackageManager makes every lookup resolve to path.
func withPackageManager(path string) di.Module {
	return func(i di.Injector) error {
		do.OverrideValue(i, pkgmanager.NewLocatorWithLookPath("", func(string) (string, error) {
			return path, nil
		}))

		return nil
	}
}

// writeFakePackageManager creates a script that prints each argument on its own line.
func writeFakePackageManager(t *testing.T, exitCode string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "npm")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\"\nexit " + exitCode + "\n"

	require.NoError(t, os.WriteFile(path, []byte(script), 0o700))

	return path
}

type testRoot struct {
	out    bytes.Buffer
	errOut bytes.Buffer
	dir    string
}

// run executes wilder with args in dir, feeding input to stdin.
func (r *testRoot) run(t *testing.T, input string, args []string, overrides ...di.Module) error {
	t.Helper()

	if r.dir == "" {
		r.dir = t.TempDir()
	}

	root := cmd.NewRootCmd("", "", "", append([]di.Module{di.WithWorkDir(r.dir)}, overrides...)...)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&r.out)
	root.SetErr(&r.errOut)
	root.SetArgs(args)

	return cmd.Execute(root)
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestPassthrough_PrependsRegistry(t *testing.T) {
	var root testRoot

	err := root.run(t, "", []string{"install", "lodash", "--save-dev"}, withPackageManager(writeFakePackageManager(t, "0")))

	require.NoError(t, err)
	assert.Equal(t, "--registry="+registry.DefaultURL.String()+"\ninstall\nlodash\n--save-dev\n", root.out.String())
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestPassthrough_UsesPersistedRegistry(t *testing.T) {
	var root testRoot

	root.dir = t.TempDir()
	record := `{"registry": "https://registry.npmjs.org/"}`
	require.NoError(t, os.WriteFile(filepath.Join(root.dir, ".wilderrc"), []byte(record), 0o600))

	err := root.run(t, "", []string{"ci"}, withPackageManager(writeFakePackageManager(t, "0")))

	require.NoError(t, err)
	assert.Equal(t, "--registry=https://registry.npmjs.org/\nci\n", root.out.String())
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestPassthrough_NoArgs(t *testing.T) {
	var root testRoot

	err := root.run(t, "", []string{}, withPackageManager(writeFakePackageManager(t, "0")))

	require.NoError(t, err)
	assert.Equal(t, "--registry="+registry.DefaultURL.String()+"\n", root.out.String())
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestPassthrough_PropagatesExitCode(t *testing.T) {
	var root testRoot

	err := root.run(t, "", []string{"test"}, withPackageManager(writeFakePackageManager(t, "3")))

	var exitErr *pkgmanager.ExitError

	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestPassthrough_ExecutableNotFound(t *testing.T) {
	t.Parallel()

	var root testRoot

	notFound := func(i di.Injector) error {
		do.OverrideValue(i, pkgmanager.NewLocatorWithLookPath(t.TempDir(), func(string) (string, error) {
			return "", errNotOnPath
		}))

		return nil
	}

	err := root.run(t, "", []string{"install"}, notFound)

	require.ErrorIs(t, err, pkgmanager.ErrExecutableNotFound)

	var cmdErr *errorhandler.CommandError

	require.ErrorAs(t, err, &cmdErr)
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestHelp_PrintsBannerThenPackageManagerHelp(t *testing.T) {
	fake := writeFakePackageManager(t, "0")

	var root testRoot

	require.NoError(t, root.run(t, "", []string{"--help"}, withPackageManager(fake)))

	snaps.MatchSnapshot(t, strings.TrimSpace(root.out.String()))

	for _, alias := range []string{"help", "-h"} {
		var other testRoot

		require.NoError(t, other.run(t, "", []string{alias}, withPackageManager(fake)))
		assert.Equal(t, root.out.String(), other.out.String(), alias)
	}
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestHelp_ForwardsRemainingArgs(t *testing.T) {
	fake := writeFakePackageManager(t, "0")

	for _, args := range [][]string{{"help", "install"}, {"-h", "install"}} {
		var root testRoot

		require.NoError(t, root.run(t, "", args, withPackageManager(fake)))

		out := root.out.String()
		assert.Contains(t, out, "Wilder commands:")
		assert.True(t, strings.HasSuffix(out, "--registry="+registry.DefaultURL.String()+"\ninstall\n"), out)
	}
}

//nolint:paralleltest // executes a freshly written script, which races with parallel writers (ETXTBSY)
func TestHelp_ShowsVersionWhenKnown(t *testing.T) {
	fake := writeFakePackageManager(t, "0")

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-10-14", di.WithWorkDir(t.TempDir()), withPackageManager(fake))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"help"})

	require.NoError(t, cmd.Execute(root))
	assert.Contains(t, out.String(), "Version: 1.2.3 (Built on 2026-10-14 from Git SHA abc123)")
}

func TestNewRootCmd_DisablesCompletionCommand(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("", "", "")

	for _, sub := range root.Commands() {
		assert.NotEqual(t, "completion", sub.Name())
	}

	assert.True(t, root.DisableFlagParsing)
}
