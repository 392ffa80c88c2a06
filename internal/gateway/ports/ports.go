// Package ports declares what the gateway needs from downstream services.
// Lookups report a miss as found == false with a nil error; every error is
// already classified with a domain error code.
package ports

import (
	"context"

	"assurance/internal/gateway/models"
)

type UserPort interface {
	FindUserByID(ctx context.Context, id string) (*models.User, bool, error)
}

type QuotePort interface {
	GetQuoteByID(ctx context.Context, id string) (*models.Quote, bool, error)
}

type BeneficiaryPort interface {
	GetBeneficiaryByUserID(ctx context.Context, userID string) (*models.Beneficiary, bool, error)
	GetBeneficiaryByID(ctx context.Context, id string) (*models.Beneficiary, bool, error)
	GetBeneficiaryWithInsurances(ctx context.Context, id string) (*models.BeneficiaryDetail, bool, error)
	ListBeneficiaries(ctx context.Context) ([]models.Beneficiary, error)
	CreateBeneficiary(ctx context.Context, in models.NewBeneficiary) (*models.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, in models.BeneficiaryUpdate) (*models.Beneficiary, bool, error)
}

type InsurancePort interface {
	CreateInsurance(ctx context.Context, in models.NewInsurance) (*models.Insurance, error)
	GetInsuranceByID(ctx context.Context, id string) (*models.Insurance, bool, error)
	ListInsurances(ctx context.Context) ([]models.Insurance, error)
	UpdateInsurance(ctx context.Context, id string, patch models.InsurancePatch) (*models.Insurance, bool, error)
	DeleteInsurance(ctx context.Context, id string) (*models.Insurance, bool, error)
}
