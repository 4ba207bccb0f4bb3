package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// New returns a config filled from environment variables selected by name prefix.
// Keys are lower-cased by viper, so THRESHOLD_FAILURE_POLICY becomes "failure_policy"
// when the prefix is trimmed.
func New(prefix string, trimPrefix bool) *viper.Viper {

	v := viper.New()
	prefix = strings.ToUpper(prefix) + "_"

	for _, pair := range os.Environ() {
		pos := strings.Index(pair, "=")
		if pos == -1 {
			continue
		}

		key := pair[:pos]
		if !strings.HasPrefix(strings.ToUpper(key), prefix) {
			continue
		}

		newKey := key
		if trimPrefix {
			newKey = key[len(prefix):]
		}
		v.SetDefault(newKey, pair[pos+1:])
	}

	return v
}

// SetSub inserts all settings of sub under the key
func SetSub(dest, sub *viper.Viper, key string) {
	dest.Set(key, sub.AllSettings())
}

// Merge copies every setting of src over dest. Values of src win.
func Merge(dest, src *viper.Viper) error {
	return dest.MergeConfigMap(src.AllSettings())
}
