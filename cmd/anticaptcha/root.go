package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	anticaptcha "github.com/anatolykoptev/go-anticaptcha"
	"github.com/anatolykoptev/go-anticaptcha/metrics"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfg        *Config
	client     *anticaptcha.Client
	registry   *prometheus.Registry
	indicators *metrics.PromIndicators
}

// Cmd builds the root command.
func Cmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "anticaptcha",
		Short:         "Command line client for the Anti-Captcha API.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	registerFlags(rootCmd)

	rootCmd.AddCommand(balanceCmd(a))
	rootCmd.AddCommand(solveCmd(a))
	rootCmd.AddCommand(createCmd(a))
	rootCmd.AddCommand(resultCmd(a))
	rootCmd.AddCommand(reportCmd(a))
	rootCmd.AddCommand(pushVariableCmd(a))
	rootCmd.AddCommand(queueStatsCmd(a))
	rootCmd.AddCommand(spendingStatsCmd(a))
	rootCmd.AddCommand(appStatsCmd(a))
	rootCmd.AddCommand(testCmd(a))
	rootCmd.AddCommand(taskTypesCmd())

	a.dumpMetricsAfter(rootCmd)
	return rootCmd
}

// dumpMetricsAfter wraps every runnable command so metrics are printed
// whether or not the command fails.
func (a *app) dumpMetricsAfter(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		a.dumpMetricsAfter(sub)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if dumpErr := a.dumpMetrics(cmd.ErrOrStderr()); err == nil {
				err = dumpErr
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cc, err := cfg.clientConfig()
	if err != nil {
		return err
	}
	if cfg.Verbose && cfg.VerboseIdentifier == "" {
		cc.VerboseIdentifier = uuid.NewString()
	}
	cc.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		a.indicators = metrics.NewPromIndicators(a.registry)
		cc.MetricsHook = a.indicators.Hook()
	}
	a.cfg = cfg
	a.client = anticaptcha.NewClient(cfg.APIKey, cc)
	return nil
}

func (a *app) dumpMetrics(w io.Writer) error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
