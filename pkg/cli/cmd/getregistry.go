package cmd

import (
	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewGetRegistryCmd creates the get-registry command.
func NewGetRegistryCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get-registry",
		Short: "Show the configured registry",
		Args:  cobra.NoArgs,
		RunE: di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, _ []string, injector di.Injector) error {
			resolver, err := di.ResolveResolver(injector)
			if err != nil {
				return err
			}

			notify.Successf(cmd.OutOrStdout(), "Current registry: %s", resolver.Current())

			return nil
		}),
	}
}
