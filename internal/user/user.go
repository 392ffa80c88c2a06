// Package user is the user service: identity records answered over the
// user command channel.
package user

import (
	"log/slog"

	"assurance/internal/platform/config"
	"assurance/internal/platform/seed"
	"assurance/internal/user/handler"
	"assurance/internal/user/models"
	"assurance/internal/user/service"
	"assurance/internal/user/store"
	"assurance/pkg/platform/rpc"
)

// NewCommandServer builds the user command server over transport with a
// store seeded from cfg.Service.UserSeedFile.
func NewCommandServer(transport rpc.Transport, cfg *config.Config, logger *slog.Logger, m *rpc.Metrics) (*rpc.Server, error) {
	users, err := seed.Load[models.User](cfg.Service.UserSeedFile)
	if err != nil {
		return nil, err
	}
	st := store.NewInMemoryStore()
	if err := st.Seed(users); err != nil {
		return nil, err
	}
	logger.Info("user store seeded", "users", len(users), "file", cfg.Service.UserSeedFile)

	srv := rpc.NewServer(transport, cfg.Channels.User, logger,
		rpc.WithConcurrency(cfg.Service.Concurrency),
		rpc.WithServerMetrics(m),
	)
	handler.New(service.NewService(st), logger).Register(srv)
	return srv, nil
}
