package models

// Quote is a priced offer the insurance workflow turns into a policy.
type Quote struct {
	ID               string  `json:"id" yaml:"id"`
	QuoteNumber      string  `json:"quoteNumber" yaml:"quoteNumber"`
	InsuranceType    string  `json:"insuranceType" yaml:"insuranceType"`
	InsurancePremium float64 `json:"insurancePremium" yaml:"insurancePremium"`
	VehicleID        string  `json:"vehicleId" yaml:"vehicleId"`
}
