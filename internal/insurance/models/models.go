package models

import (
	"strings"
	"time"
)

// InsuranceStatus is the lifecycle state of a policy.
type InsuranceStatus string

const (
	StatusActive    InsuranceStatus = "active"
	StatusSuspended InsuranceStatus = "suspended"
	StatusCancelled InsuranceStatus = "cancelled"
	StatusExpired   InsuranceStatus = "expired"
)

// IsValid reports whether s is a known status.
func (s InsuranceStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Attachments are the documents a beneficiary must supply. They are stored
// but never echoed back in replies.
type Attachments struct {
	ProofOfResidence []byte `json:"justificatifDomicile"`
	DrivingLicense   []byte `json:"permis"`
}

// Complete reports whether both documents are present.
func (a Attachments) Complete() bool {
	return len(a.ProofOfResidence) > 0 && len(a.DrivingLicense) > 0
}

// Beneficiary is the insured party. There is at most one per UserID.
type Beneficiary struct {
	ID            string      `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	PostalAddress string      `json:"postalAddress"`
	PhoneNumber   string      `json:"phoneNumber"`
	Email         string      `json:"email"`
	UserID        string      `json:"userId"`
	Insurances    []string    `json:"insurances"`
	Attachments   Attachments `json:"-"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Clone returns a deep copy.
func (b *Beneficiary) Clone() *Beneficiary {
	c := *b
	c.Insurances = append(make([]string, 0, len(b.Insurances)), b.Insurances...)
	c.Attachments = Attachments{
		ProofOfResidence: append([]byte(nil), b.Attachments.ProofOfResidence...),
		DrivingLicense:   append([]byte(nil), b.Attachments.DrivingLicense...),
	}
	return &c
}

// Insurance is a policy; it is created fully formed or not at all.
type Insurance struct {
	ID                string          `json:"id"`
	InsuranceType     string          `json:"insuranceType"`
	CoverageStartDate time.Time       `json:"coverageStartDate"`
	CoverageEndDate   time.Time       `json:"coverageEndDate"`
	InsurancePremium  float64         `json:"insurancePremium"`
	Status            InsuranceStatus `json:"status"`
	QuoteID           string          `json:"quoteId"`
	DossierNumber     string          `json:"dossierNumber"`
	VehicleID         string          `json:"vehicleId"`
	BeneficiaryID     string          `json:"beneficiaryId"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// BeneficiaryDetail is a beneficiary with its policies expanded.
type BeneficiaryDetail struct {
	Beneficiary *Beneficiary `json:"beneficiary"`
	Insurances  []*Insurance `json:"insurances"`
}

// dateLayouts are accepted for coverage dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a coverage date in RFC 3339 or YYYY-MM-DD form.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
