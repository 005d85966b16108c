package models

import "time"

// Address types with reserved labels. "Home" and "Work" are unique per
// user; "Other" may repeat only under distinct custom labels.
const (
	AddressTypeHome  = "Home"
	AddressTypeWork  = "Work"
	AddressTypeOther = "Other"
)

type Address struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	Type       string `json:"type"`
}

// PaymentMethod is an opaque record managed by the API; the client never
// holds card numbers or other secrets.
type PaymentMethod struct {
	Label    string `json:"label"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}

// Profile is read-only display data about the signed-in user.
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
