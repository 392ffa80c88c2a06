// Package models holds the gateway's view of downstream records. Field names
// follow the command payloads of the user, quote and insurance services.
package models

import "time"

type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// PostalAddress joins the address parts the way beneficiaries store them.
func (u User) PostalAddress() string {
	return u.Address + " " + u.PostalCode + " " + u.City
}

type Quote struct {
	ID               string  `json:"id"`
	QuoteNumber      string  `json:"quoteNumber"`
	InsuranceType    string  `json:"insuranceType"`
	InsurancePremium float64 `json:"insurancePremium"`
	VehicleID        string  `json:"vehicleId"`
}

type Beneficiary struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	PostalAddress string    `json:"postalAddress"`
	PhoneNumber   string    `json:"phoneNumber"`
	Email         string    `json:"email"`
	UserID        string    `json:"userId"`
	Insurances    []string  `json:"insurances"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Insurance struct {
	ID                string    `json:"id"`
	InsuranceType     string    `json:"insuranceType"`
	CoverageStartDate time.Time `json:"coverageStartDate"`
	CoverageEndDate   time.Time `json:"coverageEndDate"`
	InsurancePremium  float64   `json:"insurancePremium"`
	Status            string    `json:"status"`
	QuoteID           string    `json:"quoteId"`
	DossierNumber     string    `json:"dossierNumber"`
	VehicleID         string    `json:"vehicleId"`
	BeneficiaryID     string    `json:"beneficiaryId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BeneficiaryDetail struct {
	Beneficiary *Beneficiary `json:"beneficiary"`
	Insurances  []*Insurance `json:"insurances"`
}

// Attachments are the two documents uploaded with a beneficiary.
type Attachments struct {
	ProofOfResidence []byte `json:"justificatifDomicile"`
	DrivingLicense   []byte `json:"permis"`
}

// Complete reports whether both documents are present.
func (a Attachments) Complete() bool {
	return len(a.ProofOfResidence) > 0 && len(a.DrivingLicense) > 0
}

type BeneficiaryFields struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PostalAddress string `json:"postalAddress"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	UserID        string `json:"userId"`
}

// NewBeneficiary is the createBeneficiary payload.
type NewBeneficiary struct {
	Beneficiary BeneficiaryFields `json:"beneficiaryDto"`
	Files       Attachments       `json:"fileContents"`
}

type BeneficiaryPatch struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	PostalAddress *string `json:"postalAddress,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// BeneficiaryUpdate is the updateBeneficiary payload.
type BeneficiaryUpdate struct {
	ID          string           `json:"id"`
	Beneficiary BeneficiaryPatch `json:"beneficiaryDto"`
	Files       Attachments      `json:"fileContents"`
}

// NewInsurance is the createInsurance payload. Coverage dates are forwarded
// as the caller sent them.
type NewInsurance struct {
	InsuranceType     string  `json:"insuranceType"`
	CoverageStartDate string  `json:"coverageStartDate"`
	CoverageEndDate   string  `json:"coverageEndDate"`
	InsurancePremium  float64 `json:"insurancePremium"`
	Status            string  `json:"status"`
	QuoteID           string  `json:"quoteId"`
	DossierNumber     string  `json:"dossierNumber"`
	VehicleID         string  `json:"vehicleId"`
	BeneficiaryID     string  `json:"beneficiaryId"`
}

// InsurancePatch is the updateInsurance payload without its id.
type InsurancePatch struct {
	InsuranceType     *string  `json:"insuranceType,omitempty"`
	CoverageStartDate *string  `json:"coverageStartDate,omitempty"`
	CoverageEndDate   *string  `json:"coverageEndDate,omitempty"`
	InsurancePremium  *float64 `json:"insurancePremium,omitempty"`
	Status            *string  `json:"status,omitempty"`
}

// StatusActive is the status of every policy created by the gateway.
const StatusActive = "active"
