package domain

import "strings"

// CountryUS is the only country code with special vendor handling.
const CountryUS = "US"

// Vendor statuses assigned by company processors.
const (
	StatusVerified            = "Verified"
	StatusMissingRegAndTax    = "Incomplete - missing registration/tax details"
	StatusMissingRegistration = "Incomplete - missing registration details"
	StatusMissingTax          = "Incomplete - missing tax details"

	// InternationalBankConfirm is set on non-US vendors by company A.
	InternationalBankConfirm = "Please confirm international bank details"
)

// Vendor is a vendor record. RegistrationNumber and TaxID are write-only
// inputs to classification and are never carried into processor output;
// InternationalBank and VendorStatus are only ever set by a processor.
type Vendor struct {
	VendorName         string `json:"vendorName"`
	Country            string `json:"country"`
	Bank               string `json:"bank"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	TaxID              string `json:"taxId,omitempty"`
	InternationalBank  string `json:"internationalBank,omitempty"`
	VendorStatus       string `json:"vendorStatus,omitempty"`
}

// IsFromUS reports whether the vendor is located in the United States.
// The comparison is case-insensitive.
func (v Vendor) IsFromUS() bool {
	return strings.ToUpper(v.Country) == CountryUS
}

// HasRegistrationNumber reports whether a non-blank registration number is
// present.
func (v Vendor) HasRegistrationNumber() bool {
	return strings.TrimSpace(v.RegistrationNumber) != ""
}

// HasTaxID reports whether a non-blank tax ID is present.
func (v Vendor) HasTaxID() bool {
	return strings.TrimSpace(v.TaxID) != ""
}
