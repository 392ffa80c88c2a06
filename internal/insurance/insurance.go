// Package insurance is the insurance service: beneficiaries and their
// policies, served over the insurance command channel.
package insurance

import (
	"context"
	"log/slog"

	"assurance/internal/insurance/handler"
	"assurance/internal/insurance/service"
	"assurance/internal/insurance/store"
	"assurance/internal/platform/config"
	"assurance/internal/platform/postgres"
	"assurance/pkg/platform/rpc"
)

// NewCommandServer builds the insurance command server over transport. With
// STORE_KIND=postgres it connects and ensures the schema; the returned
// release func closes whatever was opened.
func NewCommandServer(ctx context.Context, transport rpc.Transport, cfg *config.Config, logger *slog.Logger, m *rpc.Metrics) (*rpc.Server, func() error, error) {
	release := func() error { return nil }

	var svc *service.Service
	switch cfg.Service.StoreKind {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		st := store.NewPostgres(db)
		if err := st.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		release = db.Close
		svc = service.New(st, service.WithLogger(logger))
		logger.Info("insurance store ready", "kind", config.StorePostgres)
	default:
		svc = service.New(store.NewInMemoryStore(), service.WithLogger(logger))
		logger.Warn("insurance store is in memory; data is lost on restart")
	}

	srv := rpc.NewServer(transport, cfg.Channels.Insurance, logger,
		rpc.WithConcurrency(cfg.Service.Concurrency),
		rpc.WithServerMetrics(m),
	)
	handler.New(svc, logger).Register(srv)
	return srv, release, nil
}
