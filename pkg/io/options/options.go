// Package options loads Wilder's own settings from environment variables and flags.
//
// Settings are read through viper with the WILDER_ prefix, so probe-timeout is read from
// WILDER_PROBE_TIMEOUT. Flags bound to the same keys take precedence over the environment.
package options

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/devantler-tech/wilder/pkg/client/probe"
	iopkg "github.com/devantler-tech/wilder/pkg/io"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all Wilder environment variables.
const EnvPrefix = "WILDER"

// Viper keys.
const (
	KeyPackageManager = "package-manager"
	KeyProbeTimeout   = "probe-timeout"
	KeyLogLevel       = "log-level"
	KeyAssumeYes      = "assume-yes"
)

// Defaults.
const (
	DefaultPackageManager = "npm"
	DefaultLogLevel       = "warning"
)

var (
	// ErrUnsupportedPackageManager is returned for package managers Wilder cannot drive.
	ErrUnsupportedPackageManager = errors.New("unsupported package manager")
	// ErrInvalidProbeTimeout is returned for non-positive probe timeouts.
	ErrInvalidProbeTimeout = errors.New("probe timeout must be positive")
)

// SupportedPackageManagers lists the executables Wilder can wrap.
func SupportedPackageManagers() []string {
	return []string{"npm", "pnpm", "yarn"}
}

// Options are Wilder's runtime settings.
type Options struct {
	PackageManager string        `mapstructure:"package-manager"`
	ProbeTimeout   time.Duration `mapstructure:"probe-timeout"`
	LogLevel       string        `mapstructure:"log-level"`
	AssumeYes      bool          `mapstructure:"assume-yes"`
}

// NewViper returns a viper instance with defaults and environment binding configured.
func NewViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	viperInstance.SetDefault(KeyPackageManager, DefaultPackageManager)
	viperInstance.SetDefault(KeyProbeTimeout, probe.DefaultTimeout)
	viperInstance.SetDefault(KeyLogLevel, DefaultLogLevel)
	viperInstance.SetDefault(KeyAssumeYes, false)

	return viperInstance
}

// Load decodes and validates options from viperInstance.
func Load(viperInstance *viper.Viper) (Options, error) {
	var opts Options

	err := viperInstance.Unmarshal(&opts, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	if err != nil {
		return Options{}, fmt.Errorf("failed to decode options: %w", err)
	}

	opts.PackageManager = iopkg.Fold(opts.PackageManager)

	err = opts.Validate()
	if err != nil {
		return Options{}, err
	}

	return opts, nil
}

// Validate checks that the options can be used.
func (o Options) Validate() error {
	if !slices.Contains(SupportedPackageManagers(), o.PackageManager) {
		return fmt.Errorf(
			"%w %q: expected one of %s",
			ErrUnsupportedPackageManager,
			o.PackageManager,
			strings.Join(SupportedPackageManagers(), ", "),
		)
	}

	if o.ProbeTimeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidProbeTimeout, o.ProbeTimeout)
	}

	return nil
}
