// Package quote is the quote service: priced quotes answered over the quote
// command channel.
package quote

import (
	"log/slog"

	"assurance/internal/platform/config"
	"assurance/internal/platform/seed"
	"assurance/internal/quote/handler"
	"assurance/internal/quote/models"
	"assurance/internal/quote/service"
	"assurance/internal/quote/store"
	"assurance/pkg/platform/rpc"
)

// NewCommandServer builds the quote command server over transport with a
// store seeded from cfg.Service.QuoteSeedFile.
func NewCommandServer(transport rpc.Transport, cfg *config.Config, logger *slog.Logger, m *rpc.Metrics) (*rpc.Server, error) {
	quotes, err := seed.Load[models.Quote](cfg.Service.QuoteSeedFile)
	if err != nil {
		return nil, err
	}
	st := store.NewInMemoryStore()
	if err := st.Seed(quotes); err != nil {
		return nil, err
	}
	logger.Info("quote store seeded", "quotes", len(quotes), "file", cfg.Service.QuoteSeedFile)

	srv := rpc.NewServer(transport, cfg.Channels.Quote, logger,
		rpc.WithConcurrency(cfg.Service.Concurrency),
		rpc.WithServerMetrics(m),
	)
	handler.New(service.NewService(st), logger).Register(srv)
	return srv, nil
}
