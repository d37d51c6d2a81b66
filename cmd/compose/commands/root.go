package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/whisper/compose/internal/config"
	"github.com/whisper/compose/internal/metrics"
)

var (
	envFile     string
	metricsAddr string
	cfg         config.Config
)

// errNotSendable makes the process exit non-zero without an error message.
var errNotSendable = errors.New("not sendable")

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errNotSendable) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "compose",
		Short:         "Terminal chat composer demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			if err := config.LoadDotEnv(files...); err != nil {
				return err
			}

			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("metrics-addr") {
				loaded.MetricsAddr = metricsAddr
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env if present)")
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9100)")

	root.AddCommand(tuiCmd(), replayCmd(), checkCmd())
	return root
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// startMetrics serves metrics in the background when an address is
// configured. The listener stops when ctx is cancelled.
func startMetrics(ctx context.Context) {
	if cfg.MetricsAddr == "" {
		return
	}
	go func() {
		if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
			log.Printf("[metrics] %v", err)
		}
	}()
}
