package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/devantler-tech/wilder/internal/buildmeta"
	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
)

const (
	projectURL = "https://github.com/JohnyYen/wilder-pnpm"

	bannerWidth = 80
	usageWidth  = 29
	// descriptionColumn accounts for the "  ❯ " prefix before the usage.
	descriptionColumn = 4 + usageWidth
)

//nolint:gochecknoglobals // static banner content
var bannerCommands = []struct {
	usage       string
	description string
}{
	{"wilder set-registry <url>", "Set a new registry (checks format and reachability)"},
	{"wilder get-registry", "Show the configured registry"},
	{"wilder reset-registry", "Remove .wilderrc and use the default registry"},
}

// NewHelpCmd creates the help command. It prints Wilder's banner and then shows the
// package manager's own help, or runs the package manager with the given args.
func NewHelpCmd(runtimeContainer *di.Runtime, info buildmeta.Info) *cobra.Command {
	return &cobra.Command{
		Use:                "help [args...]",
		Short:              "Show Wilder's commands followed by the package manager's help",
		DisableFlagParsing: true,
		RunE: di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, args []string, injector di.Injector) error {
			return runHelp(cmd, args, injector, info)
		}),
	}
}

func isHelpArg(arg string) bool {
	switch arg {
	case "help", "--help", "-h":
		return true
	default:
		return false
	}
}

func runHelp(cmd *cobra.Command, args []string, injector di.Injector, info buildmeta.Info) error {
	opts, err := di.ResolveOptions(injector)
	if err != nil {
		return err
	}

	writeBanner(cmd.OutOrStdout(), opts.PackageManager, info)

	if len(args) == 0 {
		args = []string{"--help"}
	}

	return runPackageManager(injector, args)
}

func writeBanner(out io.Writer, packageManager string, info buildmeta.Info) {
	notify.Titlef(out, "🐺", "Wilder - %s wrapper with a custom registry", packageManager)

	_, _ = fmt.Fprint(out, "\nWilder commands:\n")

	for _, command := range bannerCommands {
		writeBannerCommand(out, command.usage, command.description)
	}

	if version := info.String(); version != "" {
		_, _ = fmt.Fprintf(out, "\nVersion: %s\n", version)
	}

	_, _ = fmt.Fprintf(out, "\nFor more information, visit: %s\n\n", projectURL)
	_, _ = fmt.Fprint(out, "------------------------------\n\n")
}

// writeBannerCommand prints one usage line, wrapping the description so it stays in its
// column within bannerWidth.
func writeBannerCommand(out io.Writer, usage, description string) {
	wrapped := wordwrap.WrapString(description, bannerWidth-descriptionColumn)
	lines := strings.Split(wrapped, "\n")

	_, _ = fmt.Fprintf(out, "  ❯ %-*s%s\n", usageWidth, usage, lines[0])

	indent := strings.Repeat(" ", descriptionColumn)
	for _, line := range lines[1:] {
		_, _ = fmt.Fprintf(out, "%s%s\n", indent, line)
	}
}
