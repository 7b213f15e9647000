package processor

import "finecto/internal/domain"

// InvoiceProcessor classifies one validated invoice into an account code.
// Implementations are stateless pure functions of their input: they return a
// freshly constructed invoice and never mutate the argument.
type InvoiceProcessor interface {
	Process(inv domain.Invoice) domain.Invoice
}

var invoiceProcessors = map[Company]InvoiceProcessor{
	CompanyA: companyAInvoice{},
	CompanyB: companyBInvoice{},
}

// ForInvoice resolves the invoice processor for a company code. Matching is
// case-insensitive; unknown codes yield a conflict error.
func ForInvoice(company string) (InvoiceProcessor, error) {
	if p, ok := invoiceProcessors[normalize(company)]; ok {
		return p, nil
	}
	return nil, unsupported(company)
}

type companyAInvoice struct{}

// Process assigns ALC-001 when any line mentions alcohol, STD-001 otherwise.
func (companyAInvoice) Process(inv domain.Invoice) domain.Invoice {
	account := domain.AccountStandardA
	if inv.HasAlcoholItems() {
		account = domain.AccountAlcoholA
	}
	return domain.Invoice{
		Account:     account,
		InvoiceID:   inv.InvoiceID,
		InvoiceDate: inv.InvoiceDate,
		Lines:       inv.Lines,
	}
}

type companyBInvoice struct{}

// Process assigns the account by regulated-product presence: MULTI-B when
// both alcohol and tobacco appear, ALC-B for alcohol only, TOB-B for tobacco
// only, STD-B for neither.
func (companyBInvoice) Process(inv domain.Invoice) domain.Invoice {
	alcohol := inv.HasAlcoholItems()
	tobacco := inv.HasTobaccoItems()

	var account domain.Account
	switch {
	case alcohol && tobacco:
		account = domain.AccountMultiB
	case alcohol:
		account = domain.AccountAlcoholB
	case tobacco:
		account = domain.AccountTobaccoB
	default:
		account = domain.AccountStandardB
	}

	return domain.Invoice{
		Account:     account,
		InvoiceID:   inv.InvoiceID,
		InvoiceDate: inv.InvoiceDate,
		Lines:       inv.Lines,
	}
}
