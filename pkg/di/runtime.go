package di

import (
	"github.com/devantler-tech/wilder/pkg/cli/helpers"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to modules and handlers.
type Injector = do.Injector

// Module registers dependencies with an injector.
type Module func(Injector) error

// Runtime owns the base modules every command invocation starts from.
type Runtime struct {
	modules []Module
}

// New creates a Runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke builds a fresh injector, applies the base modules followed by extraModules,
// and runs handler. Nil modules are skipped. Module errors are returned unchanged.
func (r *Runtime) Invoke(handler func(Injector) error, extraModules ...Module) error {
	injector := do.New()
	defer injector.Shutdown()

	for _, module := range append(append([]Module{}, r.modules...), extraModules...) {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler that needs an injector into a cobra RunE function.
// The command's streams are registered before the handler runs.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, args []string, injector Injector) error,
	extraModules ...Module,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		modules := append([]Module{WithStreams(helpers.CommandStreams(cmd))}, extraModules...)

		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, args, injector)
		}, modules...)
	}
}
