package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"assurance/internal/user/models"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/rpc"
)

// Command names served on the user channel.
const CmdFindUserByID = "findUserById"

type Service interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Handler exposes the user service as commands.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register wires command handlers on server.
func (h *Handler) Register(server *rpc.Server) {
	server.Handle(CmdFindUserByID, h.handleFindUserByID)
}

// handleFindUserByID takes a JSON string subject id and replies with the
// user or null.
func (h *Handler) handleFindUserByID(ctx context.Context, payload json.RawMessage) (any, error) {
	var id string
	if err := json.Unmarshal(payload, &id); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "payload must be a user id string")
	}
	u, err := h.service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.logger.DebugContext(ctx, "user resolved", "user_id", u.ID)
	return u, nil
}
