package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/dmitrymomot/dotlocale/internal/config"
	"github.com/dmitrymomot/dotlocale/internal/server"
	"github.com/dmitrymomot/dotlocale/middlewares"
	"github.com/dmitrymomot/dotlocale/pkg/health"
	"github.com/dmitrymomot/dotlocale/pkg/logger"
)

type serveConfig struct {
	Serve *cli.Command
	Addr  string `cli:"name=addr desc='TCP listen address, overrides HTTP_ADDR'"`
}

// ServeCommand returns the serve subcommand.
func ServeCommand() *cli.Command {
	cfg := &serveConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>]").
		WithDescription("serve the lookup API over HTTP").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *serveConfig) run(cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}

	conf, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Addr != "" {
		conf.HTTP.Addr = cfg.Addr
	}

	log, err := logger.NewWithSentry(conf.Sentry, conf.Log,
		middlewares.RequestIDExtractor(),
		middlewares.LanguageExtractor(),
	)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	ctx := context.Background()
	store, src, err := config.NewStore(ctx, conf, log)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "store ready", logAttrs(store)...)

	srv := server.New(store,
		server.WithLogger(logger.Component(log, "http")),
		server.WithReadinessChecks(health.Checks{"source": health.SourceCheck(src)}),
	)

	return server.Run(ctx, conf.HTTP.Addr, srv.Handler(),
		server.WithRunLogger(log),
		server.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		server.WithShutdownHook(func(context.Context) error {
			if !logger.FlushSentry(2 * time.Second) {
				log.Warn("sentry flush timed out", slog.Duration("timeout", 2*time.Second))
			}
			return nil
		}),
	)
}
