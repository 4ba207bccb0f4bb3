package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// GetString returns string value. Returns error if value is not set
func GetString(src *viper.Viper, key string) (string, error) {

	if src.IsSet(key) {
		return src.GetString(key), nil
	}

	return "", newError(key)
}

// GetDuration returns duration value. Returns error if value is not set
func GetDuration(src *viper.Viper, key string) (time.Duration, error) {

	if src.IsSet(key) {
		return src.GetDuration(key), nil
	}

	return 0, newError(key)
}

// GetBool returns boolean value. Returns error if value is not set
func GetBool(src *viper.Viper, key string) (bool, error) {

	if src.IsSet(key) {
		return src.GetBool(key), nil
	}

	return false, newError(key)
}

// GetInt returns integer value. Returns error if value is not set
func GetInt(src *viper.Viper, key string) (int, error) {

	if src.IsSet(key) {
		return src.GetInt(key), nil
	}

	return 0, newError(key)
}

// ReadFile loads a config file (format by extension) into dest
func ReadFile(dest *viper.Viper, path string) error {

	if strings.TrimSpace(path) == "" {
		return errors.New("invalid config file name")
	}

	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "config file")
	}

	dest.SetConfigFile(path)
	if err := dest.MergeInConfig(); err != nil {
		return errors.Wrap(err, "failed to parse config")
	}

	return nil
}

func newError(key string) error {
	return fmt.Errorf("not found config value: '%s'", key)
}
