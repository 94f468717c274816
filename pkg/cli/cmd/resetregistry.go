package cmd

import (
	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewResetRegistryCmd creates the reset-registry command.
func NewResetRegistryCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-registry",
		Short: "Remove .wilderrc and use the default registry",
		Args:  cobra.NoArgs,
		RunE: di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, _ []string, injector di.Injector) error {
			resolver, err := di.ResolveResolver(injector)
			if err != nil {
				return err
			}

			defaultRegistry, err := resolver.Reset()
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the resolver
			}

			notify.Successf(cmd.OutOrStdout(), "Registry reset to default: %s", defaultRegistry)

			return nil
		}),
	}
}
