package models

// User is the identity record owned by the user service. Only the fields the
// insurance workflow reads are carried here.
type User struct {
	ID          string `json:"id" yaml:"id"`
	FirstName   string `json:"firstName" yaml:"firstName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	Address     string `json:"address" yaml:"address"`
	City        string `json:"city" yaml:"city"`
	PostalCode  string `json:"postalCode" yaml:"postalCode"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`
	Email       string `json:"email" yaml:"email"`
}
