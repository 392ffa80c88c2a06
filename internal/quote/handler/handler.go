package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"assurance/internal/quote/models"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/rpc"
)

// Command names served on the quote channel.
const (
	CmdGetQuoteByID = "getQuoteById"
	CmdGetQuotes    = "getQuotes"
)

type Service interface {
	FindByID(ctx context.Context, id string) (*models.Quote, error)
	List(ctx context.Context) ([]*models.Quote, error)
}

// Handler exposes the quote service as commands.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register wires command handlers on server.
func (h *Handler) Register(server *rpc.Server) {
	server.Handle(CmdGetQuoteByID, h.handleGetQuoteByID)
	server.Handle(CmdGetQuotes, h.handleGetQuotes)
}

func (h *Handler) handleGetQuoteByID(ctx context.Context, payload json.RawMessage) (any, error) {
	var id string
	if err := json.Unmarshal(payload, &id); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "payload must be a quote id string")
	}
	return h.service.FindByID(ctx, id)
}

func (h *Handler) handleGetQuotes(ctx context.Context, _ json.RawMessage) (any, error) {
	return h.service.List(ctx)
}
