// Package usecase orchestrates the transforms: resolve the company
// processor, classify the record, append the result to the journal and
// return it. A journal failure fails the whole operation; steps before the
// append have no side effects, so nothing needs compensating.
package usecase

import (
	"github.com/rs/zerolog"

	"finecto/internal/domain"
	"finecto/internal/journal"
	"finecto/internal/logger"
	"finecto/internal/processor"
)

// InvoiceTransform orchestrates invoice classification and journaling.
type InvoiceTransform struct {
	journal Appender
	log     zerolog.Logger
}

// NewInvoiceTransform creates the invoice use case on top of a journal.
func NewInvoiceTransform(journal Appender) *InvoiceTransform {
	return &InvoiceTransform{
		journal: journal,
		log:     logger.WithComponent("invoice-transform"),
	}
}

// Execute classifies the invoice with the company's processor, journals the
// result tagged "invoice" and returns it unchanged.
func (uc *InvoiceTransform) Execute(company string, inv domain.Invoice) (domain.Invoice, error) {
	p, err := processor.ForInvoice(company)
	if err != nil {
		return domain.Invoice{}, err
	}

	out := p.Process(inv)

	rec, err := journal.Record("invoice", out)
	if err != nil {
		return domain.Invoice{}, err
	}
	if err := uc.journal.Append(rec); err != nil {
		return domain.Invoice{}, err
	}

	uc.log.Info().
		Str("company", company).
		Str("invoice_id", out.InvoiceID).
		Str("account", string(out.Account)).
		Msg("Invoice transformed")

	return out, nil
}
