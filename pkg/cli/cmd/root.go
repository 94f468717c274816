package cmd

import (
	"github.com/devantler-tech/wilder/internal/buildmeta"
	"github.com/devantler-tech/wilder/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Words that are not Wilder commands are forwarded
// to the package manager, so flag parsing and cobra's completion command are disabled on
// the root. overrides replace default dependencies and are mainly used by tests.
func NewRootCmd(version, commit, date string, overrides ...di.Module) *cobra.Command {
	runtimeContainer := di.NewRuntime(overrides...)
	info := buildmeta.Info{Version: version, Commit: commit, Date: date}

	cmd := &cobra.Command{
		Use:                "wilder [command] [args...]",
		Short:              "Wilder wraps npm and injects a custom package registry",
		Long:               "Wilder forwards every command to the package manager with --registry=<registry> prepended.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, args []string, injector di.Injector) error {
			if len(args) > 0 && isHelpArg(args[0]) {
				return runHelp(cmd, args[1:], injector, info)
			}

			return runPackageManager(injector, args)
		}),
	}

	cmd.SetHelpCommand(NewHelpCmd(runtimeContainer, info))
	cmd.AddCommand(NewSetRegistryCmd(runtimeContainer))
	cmd.AddCommand(NewGetRegistryCmd(runtimeContainer))
	cmd.AddCommand(NewResetRegistryCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and normalizes its error.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	return executor.Execute(cmd)
}
