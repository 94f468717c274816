package cmd

import (
	"github.com/devantler-tech/wilder/pkg/di"
)

// runPackageManager forwards args to the configured package manager with the resolved
// registry prepended.
func runPackageManager(injector di.Injector, args []string) error {
	opts, err := di.ResolveOptions(injector)
	if err != nil {
		return err
	}

	resolver, err := di.ResolveResolver(injector)
	if err != nil {
		return err
	}

	locator, err := di.ResolveLocator(injector)
	if err != nil {
		return err
	}

	runner, err := di.ResolveRunner(injector)
	if err != nil {
		return err
	}

	path, err := locator.Locate(opts.PackageManager)
	if err != nil {
		return err //nolint:wrapcheck // ErrExecutableNotFound already names the executable
	}

	return runner.Run(path, resolver.Current(), args) //nolint:wrapcheck // *ExitError must reach main unchanged
}
