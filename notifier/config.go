package notifier

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/dialogs/threshold-go-lib/enum"
)

// DefaultThreshold is the value which triggers a dispatch when nothing else is configured
const DefaultThreshold = 5

// FailurePolicy defines what a dispatch does after an observer failed
type FailurePolicy int

const (
	// FailurePolicyContinue invokes the remaining observers and returns all failures together
	FailurePolicyContinue FailurePolicy = iota
	// FailurePolicyStop skips the remaining observers and returns the first failure
	FailurePolicyStop
)

var failurePolicies = enum.New[FailurePolicy]().
	Add(FailurePolicyContinue, "continue").
	Add(FailurePolicyStop, "stop")

func (p FailurePolicy) String() string {
	if name, ok := failurePolicies.GetByIndex(p); ok {
		return name
	}
	return "unknown"
}

// ParseFailurePolicy returns the policy by name. An empty name means FailurePolicyContinue.
func ParseFailurePolicy(name string) (FailurePolicy, error) {

	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return FailurePolicyContinue, nil
	}

	p, ok := failurePolicies.GetByString(key)
	if !ok {
		return 0, errors.Errorf("unknown failure policy %q, expected one of %v", name, failurePolicies.StringKeys())
	}

	return p, nil
}

// Config of the counter
type Config struct {
	// Threshold is the value which triggers a dispatch
	Threshold int `json:"threshold" mapstructure:"threshold"`
	// FailurePolicy is a name of FailurePolicy: "continue" or "stop"
	FailurePolicy string `json:"failure_policy" mapstructure:"failure_policy"`
	// RecoverPanics turns a panic of an observer into an *ObserverError.
	// A panic goes to the caller of Counter.Add otherwise.
	RecoverPanics bool `json:"recover_panics" mapstructure:"recover_panics"`
}

// NewConfig returns the config with default values
func NewConfig() Config {
	return Config{
		Threshold:     DefaultThreshold,
		FailurePolicy: FailurePolicyContinue.String(),
		RecoverPanics: true,
	}
}

// LoadConfig returns default values overridden by src
func LoadConfig(src *viper.Viper) (Config, error) {

	cfg := NewConfig()
	if src == nil {
		return cfg, nil
	}

	if err := src.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse counter config")
	}

	if err := cfg.Check(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Check validates the config
func (c Config) Check() error {

	if _, err := c.Policy(); err != nil {
		return errors.Wrap(err, "failure_policy")
	}

	return nil
}

// Policy returns the parsed failure policy
func (c Config) Policy() (FailurePolicy, error) {
	return ParseFailurePolicy(c.FailurePolicy)
}
