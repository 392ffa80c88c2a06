// Package rpc implements the gateway ports with command calls over the
// broker. Each client wraps one command channel.
package rpc

import (
	"context"

	"assurance/internal/gateway/models"
	"assurance/internal/gateway/ports"
	platformrpc "assurance/pkg/platform/rpc"
)

// Commands sent by the gateway.
const (
	cmdFindUserByID                 = "findUserById"
	cmdGetQuoteByID                 = "getQuoteById"
	cmdGetBeneficiaryByUserID       = "getBeneficiaryByUserId"
	cmdGetBeneficiaryByID           = "getBeneficiaryById"
	cmdGetBeneficiaryWithInsurances = "getBeneficiaryWithInsurances"
	cmdGetBeneficiaries             = "getBeneficiaries"
	cmdCreateBeneficiary            = "createBeneficiary"
	cmdUpdateBeneficiary            = "updateBeneficiary"
	cmdCreateInsurance              = "createInsurance"
	cmdGetInsuranceByID             = "getInsuranceById"
	cmdGetInsurances                = "getInsurances"
	cmdUpdateInsurance              = "updateInsurance"
	cmdDeleteInsurance              = "deleteInsurance"
)

var (
	_ ports.UserPort        = (*UserClient)(nil)
	_ ports.QuotePort       = (*QuoteClient)(nil)
	_ ports.BeneficiaryPort = (*InsuranceClient)(nil)
	_ ports.InsurancePort   = (*InsuranceClient)(nil)
)

// UserClient implements ports.UserPort.
type UserClient struct {
	caller platformrpc.Caller
}

func NewUserClient(caller platformrpc.Caller) *UserClient {
	return &UserClient{caller: caller}
}

func (c *UserClient) FindUserByID(ctx context.Context, id string) (*models.User, bool, error) {
	return lookup[models.User](ctx, c.caller, "user", cmdFindUserByID, id)
}

// QuoteClient implements ports.QuotePort.
type QuoteClient struct {
	caller platformrpc.Caller
}

func NewQuoteClient(caller platformrpc.Caller) *QuoteClient {
	return &QuoteClient{caller: caller}
}

func (c *QuoteClient) GetQuoteByID(ctx context.Context, id string) (*models.Quote, bool, error) {
	return lookup[models.Quote](ctx, c.caller, "quote", cmdGetQuoteByID, id)
}

// InsuranceClient implements ports.BeneficiaryPort and ports.InsurancePort;
// both live behind the insurance channel.
type InsuranceClient struct {
	caller platformrpc.Caller
}

func NewInsuranceClient(caller platformrpc.Caller) *InsuranceClient {
	return &InsuranceClient{caller: caller}
}

const insuranceService = "insurance"

func (c *InsuranceClient) GetBeneficiaryByUserID(ctx context.Context, userID string) (*models.Beneficiary, bool, error) {
	return lookup[models.Beneficiary](ctx, c.caller, insuranceService, cmdGetBeneficiaryByUserID, userID)
}

func (c *InsuranceClient) GetBeneficiaryByID(ctx context.Context, id string) (*models.Beneficiary, bool, error) {
	return lookup[models.Beneficiary](ctx, c.caller, insuranceService, cmdGetBeneficiaryByID, id)
}

func (c *InsuranceClient) GetBeneficiaryWithInsurances(ctx context.Context, id string) (*models.BeneficiaryDetail, bool, error) {
	return lookup[models.BeneficiaryDetail](ctx, c.caller, insuranceService, cmdGetBeneficiaryWithInsurances, id)
}

func (c *InsuranceClient) ListBeneficiaries(ctx context.Context) ([]models.Beneficiary, error) {
	return list[models.Beneficiary](ctx, c.caller, cmdGetBeneficiaries)
}

func (c *InsuranceClient) CreateBeneficiary(ctx context.Context, in models.NewBeneficiary) (*models.Beneficiary, error) {
	return invoke[models.Beneficiary](ctx, c.caller, insuranceService, cmdCreateBeneficiary, in)
}

func (c *InsuranceClient) UpdateBeneficiary(ctx context.Context, in models.BeneficiaryUpdate) (*models.Beneficiary, bool, error) {
	return lookup[models.Beneficiary](ctx, c.caller, insuranceService, cmdUpdateBeneficiary, in)
}

func (c *InsuranceClient) CreateInsurance(ctx context.Context, in models.NewInsurance) (*models.Insurance, error) {
	return invoke[models.Insurance](ctx, c.caller, insuranceService, cmdCreateInsurance, in)
}

func (c *InsuranceClient) GetInsuranceByID(ctx context.Context, id string) (*models.Insurance, bool, error) {
	return lookup[models.Insurance](ctx, c.caller, insuranceService, cmdGetInsuranceByID, id)
}

func (c *InsuranceClient) ListInsurances(ctx context.Context) ([]models.Insurance, error) {
	return list[models.Insurance](ctx, c.caller, cmdGetInsurances)
}

func (c *InsuranceClient) UpdateInsurance(ctx context.Context, id string, patch models.InsurancePatch) (*models.Insurance, bool, error) {
	payload := struct {
		ID string `json:"id"`
		models.InsurancePatch
	}{ID: id, InsurancePatch: patch}
	return lookup[models.Insurance](ctx, c.caller, insuranceService, cmdUpdateInsurance, payload)
}

func (c *InsuranceClient) DeleteInsurance(ctx context.Context, id string) (*models.Insurance, bool, error) {
	return lookup[models.Insurance](ctx, c.caller, insuranceService, cmdDeleteInsurance, id)
}

func lookup[T any](ctx context.Context, caller platformrpc.Caller, service, command string, payload any) (*T, bool, error) {
	value, found, err := platformrpc.Lookup[T](ctx, caller, command, payload)
	if err != nil {
		return nil, false, mapRPCError(service, err)
	}
	if !found {
		return nil, false, nil
	}
	return &value, true, nil
}

func invoke[T any](ctx context.Context, caller platformrpc.Caller, service, command string, payload any) (*T, error) {
	value, err := platformrpc.Invoke[T](ctx, caller, command, payload)
	if err != nil {
		return nil, mapRPCError(service, err)
	}
	return &value, nil
}

func list[T any](ctx context.Context, caller platformrpc.Caller, command string) ([]T, error) {
	items, found, err := platformrpc.Lookup[[]T](ctx, caller, command, nil)
	if err != nil {
		return nil, mapRPCError(insuranceService, err)
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}
