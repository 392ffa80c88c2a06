package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"assurance/internal/platform/broker"
	"assurance/internal/platform/config"
	"assurance/internal/platform/httpserver"
	"assurance/internal/platform/logger"
	"assurance/internal/platform/metrics"
	"assurance/internal/user"
	"assurance/pkg/platform/rpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "user:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("user")
	if err != nil {
		return err
	}
	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	b, err := broker.Open(ctx, cfg, log, cfg.Channels.User)
	if err != nil {
		return err
	}
	defer b.Close()

	srv, err := user.NewCommandServer(b, cfg, log, rpc.NewMetrics(reg))
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return httpserver.Run(gctx, httpserver.New(cfg.MetricsAddr, metrics.Handler(reg)), log)
		})
	}
	log.Info("user service started", "broker", b.Kind, "channel", cfg.Channels.User)
	return g.Wait()
}
