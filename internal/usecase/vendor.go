package usecase

import (
	"github.com/rs/zerolog"

	"finecto/internal/domain"
	"finecto/internal/journal"
	"finecto/internal/logger"
	"finecto/internal/processor"
)

// VendorTransform orchestrates vendor classification and journaling.
type VendorTransform struct {
	journal Appender
	log     zerolog.Logger
}

// NewVendorTransform creates the vendor use case on top of a journal.
func NewVendorTransform(journal Appender) *VendorTransform {
	return &VendorTransform{
		journal: journal,
		log:     logger.WithComponent("vendor-transform"),
	}
}

// Execute classifies the vendor with the company's processor, journals the
// result tagged "vendor" and returns it unchanged.
func (uc *VendorTransform) Execute(company string, v domain.Vendor) (domain.Vendor, error) {
	p, err := processor.ForVendor(company)
	if err != nil {
		return domain.Vendor{}, err
	}

	out := p.Process(v)

	rec, err := journal.Record("vendor", out)
	if err != nil {
		return domain.Vendor{}, err
	}
	if err := uc.journal.Append(rec); err != nil {
		return domain.Vendor{}, err
	}

	uc.log.Info().
		Str("company", company).
		Str("vendor", out.VendorName).
		Str("status", out.VendorStatus).
		Msg("Vendor transformed")

	return out, nil
}
