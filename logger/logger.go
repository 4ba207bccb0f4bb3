package logger

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FlagLevel       = "loglevel"
	FlagTime        = "logtime"
	FlagDevelopMode = "logdevelop"
)

// NewFromArgs creates a logger from the command line arguments.
// Only logger flags are parsed, the others are skipped:
//
//	--loglevel debug|info|warn|error|dpanic|panic|fatal
//	--logtime iso8601|millis|nanos|epoch
//	--logdevelop
func NewFromArgs(args []string) (*zap.Logger, error) {

	flagSet := flag.NewFlagSet(getCmdName(args), flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)                    // don't print help information about unknown flags
	flagSet.ParseErrorsWhitelist.UnknownFlags = true // skip unknown flags

	var (
		levelName   string
		timeName    string
		developMode bool
	)

	flagSet.StringVar(&levelName, FlagLevel, "", "logger level (debug, info, warn, error, dpanic, panic, fatal)")
	flagSet.StringVar(&timeName, FlagTime, "", "logger time format (iso8601, millis, nanos, epoch)")
	flagSet.BoolVar(&developMode, FlagDevelopMode, false, "logger develop mode")

	if err := flagSet.Parse(args); err != nil {
		return nil, errors.Wrap(err, "failed to parse logger settings")
	}

	var (
		level                          = zapcore.DebugLevel
		timeFormat zapcore.TimeEncoder = zapcore.EpochTimeEncoder
	)

	if v := strings.TrimSpace(levelName); v != "" {
		if err := level.Set(v); err != nil {
			return nil, errors.Wrap(err, flagSet.Lookup(FlagLevel).Usage)
		}
	}

	if v := strings.TrimSpace(timeName); v != "" {
		if err := timeFormat.UnmarshalText([]byte(v)); err != nil {
			return nil, errors.Wrap(err, flagSet.Lookup(FlagTime).Usage)
		}
	}

	cfg := zap.NewProductionConfig()
	if developMode {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = timeFormat

	return cfg.Build()
}

func getCmdName(args []string) (cmdName string) {

	if len(args) > 0 {
		if v := args[0]; len(v) > 0 && v[0] != '-' {
			cmdName = v
		}
	}

	return
}
