package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	gatewayrpc "assurance/internal/gateway/adapters/rpc"
	"assurance/internal/gateway/handler"
	gatewaymetrics "assurance/internal/gateway/metrics"
	"assurance/internal/gateway/orchestrator"
	"assurance/internal/insurance"
	jwttoken "assurance/internal/jwt_token"
	"assurance/internal/platform/broker"
	"assurance/internal/platform/config"
	"assurance/internal/platform/httpserver"
	"assurance/internal/platform/logger"
	"assurance/internal/platform/metrics"
	"assurance/internal/quote"
	"assurance/internal/user"
	auditpublisher "assurance/pkg/platform/audit/publisher"
	auditmemory "assurance/pkg/platform/audit/store/memory"
	auditworker "assurance/pkg/platform/audit/worker"
	"assurance/pkg/platform/middleware/ratelimit"
	"assurance/pkg/platform/rpc"
)

// main wires the edge: command clients for the three services, the
// orchestrator, the audit pipeline and the HTTP router. With the in-process
// broker the three services are hosted here too.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gateway:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("gateway")
	if err != nil {
		return err
	}
	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	rpcMetrics := rpc.NewMetrics(reg)

	b, err := broker.Open(ctx, cfg, log, cfg.Channels.All()...)
	if err != nil {
		return err
	}
	defer b.Close()

	g, gctx := errgroup.WithContext(ctx)

	if b.Kind == config.BrokerMemory {
		release, err := hostServices(gctx, g, b, cfg, log, rpcMetrics)
		if err != nil {
			return err
		}
		defer release()
	}

	newClient := func(channel string) *rpc.Client {
		c := rpc.NewClient(b, rpc.Options{
			Channel: channel,
			Timeout: cfg.RPC.Timeout,
			Logger:  log,
			Metrics: rpcMetrics,
		})
		g.Go(func() error { return c.Run(gctx) })
		return c
	}
	users := gatewayrpc.NewUserClient(newClient(cfg.Channels.User))
	quotes := gatewayrpc.NewQuoteClient(newClient(cfg.Channels.Quote))
	insurances := gatewayrpc.NewInsuranceClient(newClient(cfg.Channels.Insurance))

	auditStore := auditmemory.NewInMemoryStore()
	publisher := auditpublisher.New(
		auditpublisher.WithLogger(log),
		auditpublisher.WithMetrics(auditpublisher.NewMetrics(reg)),
	)
	worker := auditworker.NewWorker(auditStore, publisher.Events(), log)
	// The worker drains until the publisher is closed so queued events are
	// not lost on shutdown.
	g.Go(func() error { return worker.Run(context.WithoutCancel(gctx)) })
	g.Go(func() error {
		<-gctx.Done()
		return publisher.Close()
	})

	orch := orchestrator.New(users, insurances, quotes, insurances,
		orchestrator.WithCompensator(orchestrator.NewLogOnlyCompensator(log)),
		orchestrator.WithAuditor(publisher),
		orchestrator.WithMetrics(gatewaymetrics.New(reg)),
		orchestrator.WithLogger(log),
	)

	jwtService := jwttoken.NewJWTService(cfg.Gateway.JWTSigningKey, cfg.Gateway.JWTIssuer, cfg.Gateway.JWTAudience)
	router := handler.NewRouter(handler.RouterConfig{
		Handler:        handler.New(orch, insurances, insurances, log),
		Validator:      jwttoken.NewJWTServiceAdapter(jwtService),
		Limiter:        ratelimit.New(cfg.Gateway.RateLimitRPS, cfg.Gateway.RateLimitBurst),
		Metrics:        metrics.New(reg),
		MetricsHandler: metrics.Handler(reg),
		Logger:         log,
	})
	g.Go(func() error {
		return httpserver.Run(gctx, httpserver.New(cfg.Gateway.Addr, router), log)
	})

	log.Info("gateway started",
		"addr", cfg.Gateway.Addr,
		"broker", b.Kind,
		"rpc_timeout", cfg.RPC.Timeout.String(),
	)
	return g.Wait()
}

// hostServices runs the user, quote and insurance command servers on the
// in-process broker.
func hostServices(ctx context.Context, g *errgroup.Group, transport rpc.Transport, cfg *config.Config, log *slog.Logger, m *rpc.Metrics) (func(), error) {
	userSrv, err := user.NewCommandServer(transport, cfg, log.With("component", "user"), m)
	if err != nil {
		return nil, err
	}
	quoteSrv, err := quote.NewCommandServer(transport, cfg, log.With("component", "quote"), m)
	if err != nil {
		return nil, err
	}
	insuranceSrv, release, err := insurance.NewCommandServer(ctx, transport, cfg, log.With("component", "insurance"), m)
	if err != nil {
		return nil, err
	}
	for _, srv := range []*rpc.Server{userSrv, quoteSrv, insuranceSrv} {
		g.Go(func() error { return srv.Run(ctx) })
	}
	log.Info("hosting services in process", "channels", cfg.Channels.All())
	return func() {
		if err := release(); err != nil {
			log.Error("failed to release insurance store", "error", err)
		}
	}, nil
}
