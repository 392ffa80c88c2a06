package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"assurance/internal/insurance/models"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/rpc"
)

// Command names served on the insurance channel.
const (
	CmdCreateBeneficiary            = "createBeneficiary"
	CmdGetBeneficiaryByUserID       = "getBeneficiaryByUserId"
	CmdGetBeneficiaryByID           = "getBeneficiaryById"
	CmdGetBeneficiaries             = "getBeneficiaries"
	CmdUpdateBeneficiary            = "updateBeneficiary"
	CmdDeleteBeneficiary            = "deleteBeneficiary"
	CmdGetBeneficiaryWithInsurances = "getBeneficiaryWithInsurances"
	CmdCreateInsurance              = "createInsurance"
	CmdGetInsurances                = "getInsurances"
	CmdGetInsuranceByID             = "getInsuranceById"
	CmdUpdateInsurance              = "updateInsurance"
	CmdDeleteInsurance              = "deleteInsurance"
)

type Service interface {
	CreateBeneficiary(ctx context.Context, cmd models.CreateBeneficiaryCommand) (*models.Beneficiary, error)
	GetBeneficiaryByUserID(ctx context.Context, userID string) (*models.Beneficiary, error)
	GetBeneficiaryByID(ctx context.Context, id string) (*models.Beneficiary, error)
	ListBeneficiaries(ctx context.Context) ([]*models.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, cmd models.UpdateBeneficiaryCommand) (*models.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id string) (*models.Beneficiary, error)
	GetBeneficiaryWithInsurances(ctx context.Context, id string) (*models.BeneficiaryDetail, error)
	CreateInsurance(ctx context.Context, cmd models.CreateInsuranceCommand) (*models.Insurance, error)
	ListInsurances(ctx context.Context) ([]*models.Insurance, error)
	GetInsuranceByID(ctx context.Context, id string) (*models.Insurance, error)
	UpdateInsurance(ctx context.Context, cmd models.UpdateInsuranceCommand) (*models.Insurance, error)
	DeleteInsurance(ctx context.Context, id string) (*models.Insurance, error)
}

// Handler exposes the insurance service as commands.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register wires command handlers on server.
func (h *Handler) Register(server *rpc.Server) {
	server.Handle(CmdCreateBeneficiary, h.handleCreateBeneficiary)
	server.Handle(CmdGetBeneficiaryByUserID, byID(h.service.GetBeneficiaryByUserID, "user id"))
	server.Handle(CmdGetBeneficiaryByID, byID(h.service.GetBeneficiaryByID, "beneficiary id"))
	server.Handle(CmdGetBeneficiaries, h.handleGetBeneficiaries)
	server.Handle(CmdUpdateBeneficiary, h.handleUpdateBeneficiary)
	server.Handle(CmdDeleteBeneficiary, byID(h.service.DeleteBeneficiary, "beneficiary id"))
	server.Handle(CmdGetBeneficiaryWithInsurances, byID(h.service.GetBeneficiaryWithInsurances, "beneficiary id"))

	server.Handle(CmdCreateInsurance, h.handleCreateInsurance)
	server.Handle(CmdGetInsurances, h.handleGetInsurances)
	server.Handle(CmdGetInsuranceByID, byID(h.service.GetInsuranceByID, "insurance id"))
	server.Handle(CmdUpdateInsurance, h.handleUpdateInsurance)
	server.Handle(CmdDeleteInsurance, byID(h.service.DeleteInsurance, "insurance id"))
}

func (h *Handler) handleCreateBeneficiary(ctx context.Context, payload json.RawMessage) (any, error) {
	var cmd models.CreateBeneficiaryCommand
	if err := decode(payload, &cmd, "createBeneficiary"); err != nil {
		return nil, err
	}
	return h.service.CreateBeneficiary(ctx, cmd)
}

func (h *Handler) handleGetBeneficiaries(ctx context.Context, _ json.RawMessage) (any, error) {
	return h.service.ListBeneficiaries(ctx)
}

func (h *Handler) handleUpdateBeneficiary(ctx context.Context, payload json.RawMessage) (any, error) {
	var cmd models.UpdateBeneficiaryCommand
	if err := decode(payload, &cmd, "updateBeneficiary"); err != nil {
		return nil, err
	}
	return h.service.UpdateBeneficiary(ctx, cmd)
}

func (h *Handler) handleCreateInsurance(ctx context.Context, payload json.RawMessage) (any, error) {
	var cmd models.CreateInsuranceCommand
	if err := decode(payload, &cmd, "createInsurance"); err != nil {
		return nil, err
	}
	return h.service.CreateInsurance(ctx, cmd)
}

func (h *Handler) handleGetInsurances(ctx context.Context, _ json.RawMessage) (any, error) {
	return h.service.ListInsurances(ctx)
}

func (h *Handler) handleUpdateInsurance(ctx context.Context, payload json.RawMessage) (any, error) {
	var cmd models.UpdateInsuranceCommand
	if err := decode(payload, &cmd, "updateInsurance"); err != nil {
		return nil, err
	}
	return h.service.UpdateInsurance(ctx, cmd)
}

// byID adapts a lookup taking a bare id string into a command handler.
func byID[T any](fn func(context.Context, string) (T, error), what string) rpc.HandlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var id string
		if err := json.Unmarshal(payload, &id); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "payload must be a "+what+" string")
		}
		return fn(ctx, id)
	}
}

func decode(payload json.RawMessage, dst any, command string) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid "+command+" payload")
	}
	return nil
}
