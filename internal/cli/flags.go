package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBind binds a flag to a viper key. Both are declared in this package,
// so a failure is a wiring bug.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if f == nil {
		panic("cli: binding unknown flag for " + key)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
