package domain

import "strings"

// Account is a company-specific account code assigned during classification.
type Account string

const (
	AccountAlcoholA  Account = "ALC-001"
	AccountStandardA Account = "STD-001"
	AccountMultiB    Account = "MULTI-B"
	AccountAlcoholB  Account = "ALC-B"
	AccountTobaccoB  Account = "TOB-B"
	AccountStandardB Account = "STD-B"
)

// ProductCategory groups invoice lines by regulated product type.
type ProductCategory string

const (
	CategoryAlcohol  ProductCategory = "ALCOHOL"
	CategoryTobacco  ProductCategory = "TOBACCO"
	CategoryStandard ProductCategory = "STANDARD"
)

const (
	keywordAlcohol = "alcohol"
	keywordTobacco = "tobacco"
)

// InvoiceLine is a single line item on an invoice.
type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ContainsAlcohol reports whether the line describes an alcohol product.
// The match is a case-insensitive substring search.
func (l InvoiceLine) ContainsAlcohol() bool {
	return strings.Contains(strings.ToLower(l.Description), keywordAlcohol)
}

// ContainsTobacco reports whether the line describes a tobacco product.
func (l InvoiceLine) ContainsTobacco() bool {
	return strings.Contains(strings.ToLower(l.Description), keywordTobacco)
}

// Invoice is an invoice record. Account is empty on input and assigned by a
// company processor; processors return a fresh value rather than mutating
// their input.
type Invoice struct {
	Account     Account       `json:"account"`
	InvoiceID   string        `json:"invoiceId"`
	InvoiceDate string        `json:"invoiceDate"`
	Lines       []InvoiceLine `json:"lines"`
}

// HasAlcoholItems reports whether any line contains alcohol.
func (inv Invoice) HasAlcoholItems() bool {
	for _, line := range inv.Lines {
		if line.ContainsAlcohol() {
			return true
		}
	}
	return false
}

// HasTobaccoItems reports whether any line contains tobacco.
func (inv Invoice) HasTobaccoItems() bool {
	for _, line := range inv.Lines {
		if line.ContainsTobacco() {
			return true
		}
	}
	return false
}

// ProductCategories returns the categories present on the invoice, ALCOHOL
// before TOBACCO, falling back to STANDARD when neither applies.
func (inv Invoice) ProductCategories() []ProductCategory {
	var categories []ProductCategory

	if inv.HasAlcoholItems() {
		categories = append(categories, CategoryAlcohol)
	}
	if inv.HasTobaccoItems() {
		categories = append(categories, CategoryTobacco)
	}
	if len(categories) == 0 {
		categories = append(categories, CategoryStandard)
	}

	return categories
}
