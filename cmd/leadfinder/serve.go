package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/leads"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/config"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/resources"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/server"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/telemetry"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/tools"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	configPath    string
	addr          string
	assetsBaseURL string
	dev           bool
	logLevel      string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over Streamable HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to configuration file (JSON or YAML)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default :8000)")
	cmd.Flags().StringVar(&opts.assetsBaseURL, "assets-base-url", "", "Base URL widget bundles are served from")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "Enable development mode (pretty debug logging)")
	cmd.Flags().BoolVar(&opts.dev, "debug", false, "Alias for --dev")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

// loadConfig loads the configuration from .env, file and environment, then
// applies CLI flag overrides before validating
func loadConfig(cmd *cobra.Command, opts *serveOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.assetsBaseURL != "" {
		cfg.AssetBaseURL = strings.TrimRight(opts.assetsBaseURL, "/")
	}
	if opts.dev {
		cfg.Debug = true
		// --dev implies debug logging unless a level was given explicitly
		if !cmd.Flags().Changed("log-level") {
			cfg.LogLevel = "debug"
		}
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// run wires the registries and serves until ctx is cancelled
func run(ctx context.Context, cfg *config.Config) error {
	log.Info().
		Str("version", version).
		Str("addr", cfg.Addr).
		Str("assetBaseUrl", cfg.AssetBaseURL).
		Bool("stateless", cfg.StatelessHTTP).
		Bool("debug", cfg.Debug).
		Msg("Starting lead finder MCP server")

	widgetRegistry, err := widgets.NewDefaultRegistry(cfg.AssetBaseURL)
	if err != nil {
		return fmt.Errorf("failed to build widget registry: %w", err)
	}

	var metrics telemetry.Metrics = telemetry.NoopMetrics{}
	var opts []server.Option
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = telemetry.NewPrometheusMetrics(registry)
		opts = append(opts, server.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
	opts = append(opts, server.WithVersion(version))

	leadTools := tools.NewLeadTools(leads.NewSampleCatalog(), leads.NewSampleHistory())
	toolRegistry, err := tools.NewRegistry(widgetRegistry, metrics, tools.LeadFinderTools(leadTools)...)
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	log.Info().
		Int("tools", len(toolRegistry.List())).
		Int("widgets", widgetRegistry.Len()).
		Msg("Registries initialized")

	mcp := server.NewMCPServer(cfg, toolRegistry, resources.NewResolver(widgetRegistry, metrics), opts...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := mcp.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down MCP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return mcp.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msg("Lead finder MCP server stopped gracefully")
	return nil
}
