package di

import (
	"fmt"
	"os"

	"github.com/devantler-tech/wilder/pkg/cli/helpers"
	"github.com/devantler-tech/wilder/pkg/client/probe"
	"github.com/devantler-tech/wilder/pkg/io/configstore"
	"github.com/devantler-tech/wilder/pkg/io/options"
	"github.com/devantler-tech/wilder/pkg/svc/pkgmanager"
	"github.com/devantler-tech/wilder/pkg/svc/registryresolver"
	"github.com/devantler-tech/wilder/pkg/utils/logging"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// WorkDir is the directory holding the registry record and node_modules.
type WorkDir string

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command and tests.
// overrides run after the default providers, so they can replace any of them.
func NewRuntime(overrides ...Module) *Runtime {
	return New(append([]Module{
		provideWorkDir,
		provideStreams,
		provideOptions,
		provideLogger,
		provideStore,
		provideProber,
		provideResolver,
		provideLocator,
		provideRunner,
	}, overrides...)...)
}

// WithStreams overrides the standard streams used for output, prompts and the child process.
func WithStreams(streams pkgmanager.Streams) Module {
	return func(i Injector) error {
		do.OverrideValue(i, streams)

		return nil
	}
}

// WithWorkDir overrides the working directory.
func WithWorkDir(dir string) Module {
	return func(i Injector) error {
		do.OverrideValue(i, WorkDir(dir))

		return nil
	}
}

// WithOptions overrides options with values loaded from viperInstance,
// typically one with command flags bound.
func WithOptions(viperInstance *viper.Viper) Module {
	return func(i Injector) error {
		do.Override(i, func(Injector) (options.Options, error) {
			return options.Load(viperInstance)
		})

		return nil
	}
}

func provideWorkDir(i Injector) error {
	do.Provide(i, func(Injector) (WorkDir, error) {
		dir, err := helpers.WorkingDir()
		if err != nil {
			return "", err
		}

		return WorkDir(dir), nil
	})

	return nil
}

func provideStreams(i Injector) error {
	do.ProvideValue(i, pkgmanager.Streams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})

	return nil
}

func provideOptions(i Injector) error {
	do.Provide(i, func(Injector) (options.Options, error) {
		return options.Load(options.NewViper())
	})

	return nil
}

func provideLogger(i Injector) error {
	do.Provide(i, func(injector Injector) (logrus.FieldLogger, error) {
		opts, err := ResolveOptions(injector)
		if err != nil {
			return nil, err
		}

		streams, err := ResolveStreams(injector)
		if err != nil {
			return nil, err
		}

		logger, err := logging.New(streams.ErrOut, opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("configure logging: %w", err)
		}

		return logger, nil
	})

	return nil
}

func provideStore(i Injector) error {
	do.Provide(i, func(injector Injector) (*configstore.Store, error) {
		dir, err := do.Invoke[WorkDir](injector)
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}

		streams, err := ResolveStreams(injector)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(injector)
		if err != nil {
			return nil, err
		}

		return configstore.New(
			string(dir),
			configstore.WithWriter(streams.ErrOut),
			configstore.WithLogger(logger),
		), nil
	})

	return nil
}

func provideProber(i Injector) error {
	do.Provide(i, func(injector Injector) (*probe.Prober, error) {
		opts, err := ResolveOptions(injector)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(injector)
		if err != nil {
			return nil, err
		}

		return probe.New(probe.WithTimeout(opts.ProbeTimeout), probe.WithLogger(logger)), nil
	})

	return nil
}

// provideResolver registers a resolver without a consent gate. Commands that need
// to ask the operator build their own from the store and prober.
func provideResolver(i Injector) error {
	do.Provide(i, func(injector Injector) (*registryresolver.Resolver, error) {
		store, err := ResolveStore(injector)
		if err != nil {
			return nil, err
		}

		prober, err := ResolveProber(injector)
		if err != nil {
			return nil, err
		}

		streams, err := ResolveStreams(injector)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(injector)
		if err != nil {
			return nil, err
		}

		return registryresolver.New(
			store,
			prober,
			registryresolver.WithWriter(streams.Out),
			registryresolver.WithLogger(logger),
		), nil
	})

	return nil
}

func provideLocator(i Injector) error {
	do.Provide(i, func(injector Injector) (*pkgmanager.Locator, error) {
		dir, err := do.Invoke[WorkDir](injector)
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}

		return pkgmanager.NewLocator(string(dir)), nil
	})

	return nil
}

func provideRunner(i Injector) error {
	do.Provide(i, func(injector Injector) (*pkgmanager.Runner, error) {
		streams, err := ResolveStreams(injector)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(injector)
		if err != nil {
			return nil, err
		}

		return pkgmanager.NewRunner(streams, logger), nil
	})

	return nil
}
