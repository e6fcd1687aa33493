package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kenelite/go-singleton/internal/config"
	"github.com/kenelite/go-singleton/internal/controlplane"
	"github.com/kenelite/go-singleton/internal/demo"
	"github.com/kenelite/go-singleton/internal/listener"
	"github.com/kenelite/go-singleton/internal/observability"
	"github.com/kenelite/go-singleton/internal/registry"
)

const Version = "0.1.0"

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
}

func rootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "singletons",
		Short:         "Show that each singleton variant hands out one shared instance",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg := registry.Init(registry.WithLogger(logger))
			return demo.Run(out, reg, cfg.Demo.Repeat)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("SINGLETONS_CONFIG"), "Path to config file (yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(serveCmd(&opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(out, "singletons version %s\n", Version)
		},
	})
	return cmd
}

func setup(opts options) (*config.Config, *observability.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}
	if opts.logLevel != "" {
		cfg.Observability.LogLevel = opts.logLevel
	}
	logger, err := observability.NewLogger(cfg.Observability.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry admin API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg := registry.Init(registry.WithLogger(logger))
			mux := http.NewServeMux()
			controlplane.RegisterAdminHandlers(mux, reg, cfg, logger)
			srv := listener.NewServer(cfg.Server.AdminAddr, mux, logger)

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			select {
			case err := <-errc:
				return errors.Wrap(err, "admin server")
			case <-ctx.Done():
			}
			logger.Info("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
