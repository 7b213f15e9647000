package server

import (
	"finecto/internal/domain"
	"finecto/internal/validate"
)

// InvoiceLineInput is one line item of an inbound invoice payload.
type InvoiceLineInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// InvoiceInput is the inbound invoice payload.
type InvoiceInput struct {
	Company     string             `json:"company"`
	InvoiceID   string             `json:"invoiceId"`
	InvoiceDate string             `json:"invoiceDate"`
	Lines       []InvoiceLineInput `json:"lines"`
}

// Sanitize defangs every string field in place, including line descriptions.
func (in *InvoiceInput) Sanitize() {
	in.Company = validate.Clean(in.Company)
	in.InvoiceID = validate.Clean(in.InvoiceID)
	in.InvoiceDate = validate.Clean(in.InvoiceDate)
	for i := range in.Lines {
		in.Lines[i].Description = validate.Clean(in.Lines[i].Description)
	}
}

// Schema declares the invoice constraints. Line fields report under dotted
// paths.
func (in *InvoiceInput) Schema() validate.Schema {
	s := validate.Schema{
		validate.RequiredString("company", in.Company),
		validate.RequiredString("invoiceId", in.InvoiceID),
		validate.RequiredString("invoiceDate", in.InvoiceDate),
	}
	for _, line := range in.Lines {
		s = append(s,
			validate.RequiredString("lines.description", line.Description),
			validate.PositiveNumber("lines.amount", line.Amount),
		)
	}
	return s
}

func (in *InvoiceInput) toDomain() domain.Invoice {
	lines := make([]domain.InvoiceLine, 0, len(in.Lines))
	for _, line := range in.Lines {
		lines = append(lines, domain.InvoiceLine{
			Description: line.Description,
			Amount:      line.Amount,
		})
	}
	return domain.Invoice{
		InvoiceID:   in.InvoiceID,
		InvoiceDate: in.InvoiceDate,
		Lines:       lines,
	}
}

// VendorInput is the inbound vendor payload. Registration number and tax ID
// are optional.
type VendorInput struct {
	Company            string `json:"company"`
	VendorName         string `json:"vendorName"`
	Country            string `json:"country"`
	Bank               string `json:"bank"`
	RegistrationNumber string `json:"registrationNumber"`
	TaxID              string `json:"taxId"`
}

// Sanitize defangs every string field in place.
func (in *VendorInput) Sanitize() {
	in.Company = validate.Clean(in.Company)
	in.VendorName = validate.Clean(in.VendorName)
	in.Country = validate.Clean(in.Country)
	in.Bank = validate.Clean(in.Bank)
	in.RegistrationNumber = validate.Clean(in.RegistrationNumber)
	in.TaxID = validate.Clean(in.TaxID)
}

// Schema declares the vendor constraints. The optional fields carry no rules.
func (in *VendorInput) Schema() validate.Schema {
	return validate.Schema{
		validate.RequiredString("company", in.Company),
		validate.RequiredString("vendorName", in.VendorName),
		validate.RequiredString("country", in.Country),
		validate.RequiredString("bank", in.Bank),
	}
}

func (in *VendorInput) toDomain() domain.Vendor {
	return domain.Vendor{
		VendorName:         in.VendorName,
		Country:            in.Country,
		Bank:               in.Bank,
		RegistrationNumber: in.RegistrationNumber,
		TaxID:              in.TaxID,
	}
}
