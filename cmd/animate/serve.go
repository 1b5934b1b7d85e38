package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/animate/internal/config"
	"github.com/vango-dev/animate/internal/dev"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/middleware"
	"github.com/vango-dev/animate/pkg/server"
	"github.com/vango-dev/animate/pkg/settings"
)

type serveOptions struct {
	port    int
	host    string
	reload  bool
	pretty  bool
	verbose bool
}

func serveCmd(flags *globalFlags) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page and the attribute API",
		Long: `Serve the animation demo page and the JSON API.

With --reload the settings source is polled and every change is pushed
to open pages, which re-initialise their animations without a refresh.

Examples:
  animate serve
  animate serve --port=9000 --reload
  animate serve --settings=settings.json --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = opts.port
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = opts.host
			}
			if cmd.Flags().Changed("reload") {
				cfg.Dev.Reload = opts.reload
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Server.Pretty = opts.pretty
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd, cfg, settingsSource(flags, cfg), opts.verbose)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", config.DefaultPort, "Port to listen on (default from animate.json)")
	cmd.Flags().StringVarP(&opts.host, "host", "H", config.DefaultHost, "Host to bind to (default from animate.json)")
	cmd.Flags().BoolVarP(&opts.reload, "reload", "r", false, "Push settings changes to open pages")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent rendered HTML")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every request")
	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config, src settings.Source, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := animate.LoadSettings(ctx, src)
	if err != nil {
		return err
	}
	if ignored := store.Ignored(); len(ignored) > 0 {
		warn(cmd.ErrOrStderr(), "ignoring unknown settings: %v", ignored)
	}
	holder := settings.NewHolder(store)

	srv := server.New(&server.ServerConfig{
		Address:        cfg.Address(),
		Title:          cfg.Name,
		Pretty:         cfg.Server.Pretty,
		TrustedProxies: cfg.Server.TrustedProxies,
	}, holder)

	var metrics *middleware.Metrics
	if !cfg.Metrics.Disabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRoute(server.RoutePattern),
		)
		srv.SetMetrics(metrics, reg)
	}

	if cfg.Dev.Reload {
		interval, err := cfg.PollInterval()
		if err != nil {
			return err
		}
		hub := dev.NewReloadHub(dev.HubConfig{
			CheckOrigin: server.SameOriginCheck,
			OnClients:   metrics.SetReloadClients,
		})
		defer hub.Close()
		srv.SetReloadHandler(hub)

		reloader := dev.NewReloader(src, holder, hub)
		reloader.SetMetrics(metrics)
		go reloader.Run(ctx, interval)
		info(cmd.ErrOrStderr(), "watching %s every %s", src.Name(), interval)
	}

	success(cmd.ErrOrStderr(), "serving on %s (settings: %s)", cfg.URL(), src.Name())
	return srv.Run(ctx)
}
