package di

import (
	"fmt"

	"github.com/devantler-tech/wilder/pkg/client/probe"
	"github.com/devantler-tech/wilder/pkg/io/configstore"
	"github.com/devantler-tech/wilder/pkg/io/options"
	"github.com/devantler-tech/wilder/pkg/svc/pkgmanager"
	"github.com/devantler-tech/wilder/pkg/svc/registryresolver"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Dependency resolvers.

// ResolveOptions retrieves the tool options from the injector.
func ResolveOptions(injector Injector) (options.Options, error) {
	opts, err := do.Invoke[options.Options](injector)
	if err != nil {
		return options.Options{}, fmt.Errorf("resolve options dependency: %w", err)
	}

	return opts, nil
}

// ResolveStreams retrieves the standard streams from the injector.
func ResolveStreams(injector Injector) (pkgmanager.Streams, error) {
	streams, err := do.Invoke[pkgmanager.Streams](injector)
	if err != nil {
		return pkgmanager.Streams{}, fmt.Errorf("resolve streams dependency: %w", err)
	}

	return streams, nil
}

// ResolveLogger retrieves the diagnostic logger from the injector.
func ResolveLogger(injector Injector) (logrus.FieldLogger, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveStore retrieves the registry record store from the injector.
func ResolveStore(injector Injector) (*configstore.Store, error) {
	store, err := do.Invoke[*configstore.Store](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve store dependency: %w", err)
	}

	return store, nil
}

// ResolveProber retrieves the reachability prober from the injector.
func ResolveProber(injector Injector) (*probe.Prober, error) {
	prober, err := do.Invoke[*probe.Prober](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve prober dependency: %w", err)
	}

	return prober, nil
}

// ResolveResolver retrieves the registry resolver from the injector.
func ResolveResolver(injector Injector) (*registryresolver.Resolver, error) {
	resolver, err := do.Invoke[*registryresolver.Resolver](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve registry resolver dependency: %w", err)
	}

	return resolver, nil
}

// ResolveLocator retrieves the package manager locator from the injector.
func ResolveLocator(injector Injector) (*pkgmanager.Locator, error) {
	locator, err := do.Invoke[*pkgmanager.Locator](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve locator dependency: %w", err)
	}

	return locator, nil
}

// ResolveRunner retrieves the package manager runner from the injector.
func ResolveRunner(injector Injector) (*pkgmanager.Runner, error) {
	runner, err := do.Invoke[*pkgmanager.Runner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve runner dependency: %w", err)
	}

	return runner, nil
}
