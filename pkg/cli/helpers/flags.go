package helpers

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrFlagNotDefined is returned when binding a flag that does not exist.
var ErrFlagNotDefined = errors.New("flag not defined")

// BindFlags binds flags to viper keys. bindings maps flag names to viper keys.
func BindFlags(viperInstance *viper.Viper, flags *pflag.FlagSet, bindings map[string]string) error {
	for flagName, key := range bindings {
		flag := flags.Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("%w: --%s", ErrFlagNotDefined, flagName)
		}

		err := viperInstance.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flagName, err)
		}
	}

	return nil
}
