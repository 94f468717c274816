package cmd

import (
	"fmt"
	"io"

	"github.com/devantler-tech/wilder/pkg/cli/helpers"
	"github.com/devantler-tech/wilder/pkg/cli/ui/confirm"
	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/devantler-tech/wilder/pkg/io/options"
	"github.com/devantler-tech/wilder/pkg/svc/registryresolver"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewSetRegistryCmd creates the set-registry command.
func NewSetRegistryCmd(runtimeContainer *di.Runtime) *cobra.Command {
	viperInstance := options.NewViper()

	cmd := &cobra.Command{
		Use:   "set-registry <url>",
		Short: "Set a new registry (checks format and reachability)",
		Long: "Validates the URL, checks that the registry answers a HEAD request and saves it to .wilderrc.\n" +
			"If the registry cannot be reached you are asked whether to save it anyway.",
		Args: cobra.MaximumNArgs(1),
	}

	cmd.Flags().BoolP("yes", "y", false, "save the registry even if it is not reachable")
	cmd.Flags().Duration("timeout", 0, "how long to wait for the registry to answer (default 5s)")

	// Both flags are defined above, so binding cannot fail.
	_ = helpers.BindFlags(viperInstance, cmd.Flags(), map[string]string{
		"yes":     options.KeyAssumeYes,
		"timeout": options.KeyProbeTimeout,
	})

	cmd.RunE = di.RunEWithRuntime(runtimeContainer, handleSetRegistry, di.WithOptions(viperInstance))

	return cmd
}

func handleSetRegistry(cmd *cobra.Command, args []string, injector di.Injector) error {
	opts, err := di.ResolveOptions(injector)
	if err != nil {
		return err
	}

	store, err := di.ResolveStore(injector)
	if err != nil {
		return err
	}

	prober, err := di.ResolveProber(injector)
	if err != nil {
		return err
	}

	logger, err := di.ResolveLogger(injector)
	if err != nil {
		return err
	}

	streams, err := di.ResolveStreams(injector)
	if err != nil {
		return err
	}

	input := ""
	if len(args) > 0 {
		input = args[0]
	}

	return withConsentGate(streams.In, streams.Out, func(consent *lazyGate) error {
		resolver := registryresolver.New(
			store,
			prober,
			registryresolver.WithConsent(consent),
			registryresolver.WithWriter(streams.Out),
			registryresolver.WithLogger(logger),
		)

		normalized, err := resolver.Set(cmd.Context(), input, registryresolver.SetOptions{AssumeYes: opts.AssumeYes})
		if err != nil {
			return err //nolint:wrapcheck // resolver errors are already user facing
		}

		notify.Successf(streams.Out, "Registry set to %s", normalized)

		return nil
	})
}

// withConsentGate runs fn with a gate over in and out, and releases the gate on every
// exit path, panics included.
func withConsentGate(in io.Reader, out io.Writer, fn func(*lazyGate) error) (err error) {
	consent := &lazyGate{in: in, out: out}

	defer func() {
		closeErr := consent.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to release terminal: %w", closeErr)
		}
	}()

	return fn(consent)
}

// lazyGate opens a consent gate on the first question only, so commands that never
// need to ask do not touch the terminal.
type lazyGate struct {
	in   io.Reader
	out  io.Writer
	gate *confirm.Gate
}

func (l *lazyGate) Ask(prompt string) (bool, error) {
	if l.gate == nil {
		l.gate = confirm.Open(l.in, l.out)
	}

	return l.gate.Ask(prompt) //nolint:wrapcheck // resolver adds context
}

func (l *lazyGate) Close() error {
	if l.gate == nil {
		return nil
	}

	return l.gate.Close() //nolint:wrapcheck // wrapped by caller
}
