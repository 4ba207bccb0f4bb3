package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dialogs/threshold-go-lib/config"
	"github.com/dialogs/threshold-go-lib/logger"
	"github.com/dialogs/threshold-go-lib/notifier"
	"github.com/dialogs/threshold-go-lib/service/info"
)

// set by -ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const envPrefix = "threshold"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	var (
		opts    options
		cfgFile string
	)

	v := config.New(envPrefix, true)

	cmd := &cobra.Command{
		Use:   "threshold-demo [values...]",
		Short: "Feeds integer values to a threshold counter and reports threshold events",
		Long: `Feeds integer values to a threshold counter. Values are taken from the arguments,
or from stdin (whitespace separated) when there are no arguments.
Every value equal to the threshold is reported by the registered observers.

Settings are read from flags, the config file and THRESHOLD_* environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {

			l, err := logger.NewFromArgs(loggerArgs(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()

			if cfgFile != "" {
				if err := config.ReadFile(v, cfgFile); err != nil {
					return err
				}
			}

			opts.Counter, err = notifier.LoadConfig(v)
			if err != nil {
				return err
			}
			opts.Info = info.New("threshold-demo", version, commit, buildDate)

			values, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			return run(cmd.Context(), opts, values, cmd.OutOrStdout(), l)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json, toml)")
	flags.Int("threshold", notifier.DefaultThreshold, "value which triggers a threshold event")
	flags.String("failure-policy", notifier.FailurePolicyContinue.String(), "what to do when an observer fails (continue, stop)")
	flags.Bool("recover-panics", true, "turn observer panics into errors")
	flags.StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve /health, /info and /metrics on the address and wait for a signal")
	flags.StringVar(&opts.KafkaBrokers, "kafka-brokers", "", "publish threshold events to the kafka brokers")
	flags.StringVar(&opts.KafkaTopic, "kafka-topic", "", "kafka topic for threshold events")
	flags.DurationVar(&opts.PublishTimeout, "publish-timeout", 5*time.Second, "timeout of one kafka delivery")

	flags.String(logger.FlagLevel, "", "logger level (debug, info, warn, error, dpanic, panic, fatal)")
	flags.String(logger.FlagTime, "", "logger time format (iso8601, millis, nanos, epoch)")
	flags.Bool(logger.FlagDevelopMode, false, "logger develop mode")

	mustBind(v, "threshold", cmd, "threshold")
	mustBind(v, "failure_policy", cmd, "failure-policy")
	mustBind(v, "recover_panics", cmd, "recover-panics")

	return cmd
}

// loggerArgs passes logger flags parsed by cobra to logger.NewFromArgs
func loggerArgs(cmd *cobra.Command) []string {

	var args []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case logger.FlagLevel, logger.FlagTime, logger.FlagDevelopMode:
			args = append(args, "--"+f.Name+"="+f.Value.String())
		}
	})

	return args
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}
