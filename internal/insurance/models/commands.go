package models

// BeneficiaryInput carries the editable beneficiary fields.
type BeneficiaryInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PostalAddress string `json:"postalAddress"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	UserID        string `json:"userId"`
}

// CreateBeneficiaryCommand is the createBeneficiary payload.
type CreateBeneficiaryCommand struct {
	Beneficiary BeneficiaryInput `json:"beneficiaryDto"`
	Files       Attachments      `json:"fileContents"`
}

// BeneficiaryPatch lists fields to change; nil means unchanged.
type BeneficiaryPatch struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	PostalAddress *string `json:"postalAddress,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// UpdateBeneficiaryCommand is the updateBeneficiary payload. Both files are
// required; they replace the stored ones.
type UpdateBeneficiaryCommand struct {
	ID          string           `json:"id"`
	Beneficiary BeneficiaryPatch `json:"beneficiaryDto"`
	Files       Attachments      `json:"fileContents"`
}

// CreateInsuranceCommand is the createInsurance payload. Dates are passed as
// received from the caller and validated here.
type CreateInsuranceCommand struct {
	InsuranceType     string          `json:"insuranceType"`
	CoverageStartDate string          `json:"coverageStartDate"`
	CoverageEndDate   string          `json:"coverageEndDate"`
	InsurancePremium  float64         `json:"insurancePremium"`
	Status            InsuranceStatus `json:"status"`
	QuoteID           string          `json:"quoteId"`
	DossierNumber     string          `json:"dossierNumber"`
	VehicleID         string          `json:"vehicleId"`
	BeneficiaryID     string          `json:"beneficiaryId"`
}

// UpdateInsuranceCommand is the updateInsurance payload.
type UpdateInsuranceCommand struct {
	ID                string           `json:"id"`
	InsuranceType     *string          `json:"insuranceType,omitempty"`
	CoverageStartDate *string          `json:"coverageStartDate,omitempty"`
	CoverageEndDate   *string          `json:"coverageEndDate,omitempty"`
	InsurancePremium  *float64         `json:"insurancePremium,omitempty"`
	Status            *InsuranceStatus `json:"status,omitempty"`
}
