package di_test

import (
	"testing"

	"github.com/devantler-tech/wilder/pkg/di"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvers_EmptyInjector(t *testing.T) {
	t.Parallel()

	injector := do.New()

	tests := []struct {
		name    string
		resolve func() error
		message string
	}{
		{"options", func() error { _, err := di.ResolveOptions(injector); return err }, "resolve options dependency"},
		{"streams", func() error { _, err := di.ResolveStreams(injector); return err }, "resolve streams dependency"},
		{"logger", func() error { _, err := di.ResolveLogger(injector); return err }, "resolve logger dependency"},
		{"store", func() error { _, err := di.ResolveStore(injector); return err }, "resolve store dependency"},
		{"prober", func() error { _, err := di.ResolveProber(injector); return err }, "resolve prober dependency"},
		{"resolver", func() error { _, err := di.ResolveResolver(injector); return err }, "resolve registry resolver dependency"},
		{"locator", func() error { _, err := di.ResolveLocator(injector); return err }, "resolve locator dependency"},
		{"runner", func() error { _, err := di.ResolveRunner(injector); return err }, "resolve runner dependency"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.resolve()

			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.message)
		})
	}
}

func TestResolveOptions_Defaults(t *testing.T) {
	t.Parallel()

	err := di.NewRuntime().Invoke(func(injector di.Injector) error {
		opts, err := di.ResolveOptions(injector)
		require.NoError(t, err)
		assert.NotEmpty(t, opts.PackageManager)
		assert.Positive(t, opts.ProbeTimeout)

		return nil
	})

	require.NoError(t, err)
}
