package processor

import "finecto/internal/domain"

// VendorProcessor classifies one validated vendor. Like invoice processors,
// implementations are stateless and return fresh values. Registration number
// and tax ID inform the decision but are dropped from the output.
type VendorProcessor interface {
	Process(v domain.Vendor) domain.Vendor
}

var vendorProcessors = map[Company]VendorProcessor{
	CompanyA: companyAVendor{},
	CompanyB: companyBVendor{},
}

// ForVendor resolves the vendor processor for a company code. Matching is
// case-insensitive; unknown codes yield a conflict error.
func ForVendor(company string) (VendorProcessor, error) {
	if p, ok := vendorProcessors[normalize(company)]; ok {
		return p, nil
	}
	return nil, unsupported(company)
}

type companyAVendor struct{}

// Process asks non-US vendors to confirm international bank details. US
// vendors pass through untouched; vendor status is not company A's concern.
func (companyAVendor) Process(v domain.Vendor) domain.Vendor {
	out := domain.Vendor{
		VendorName: v.VendorName,
		Country:    v.Country,
		Bank:       v.Bank,
	}
	if !v.IsFromUS() {
		out.InternationalBank = domain.InternationalBankConfirm
	}
	return out
}

type companyBVendor struct{}

// Process checks US vendors for required documentation, most-missing first.
// Non-US vendors and fully documented US vendors are Verified.
func (companyBVendor) Process(v domain.Vendor) domain.Vendor {
	out := domain.Vendor{
		VendorName: v.VendorName,
		Country:    v.Country,
		Bank:       v.Bank,
	}

	switch {
	case v.IsFromUS() && !v.HasRegistrationNumber() && !v.HasTaxID():
		out.VendorStatus = domain.StatusMissingRegAndTax
	case v.IsFromUS() && !v.HasRegistrationNumber():
		out.VendorStatus = domain.StatusMissingRegistration
	case v.IsFromUS() && !v.HasTaxID():
		out.VendorStatus = domain.StatusMissingTax
	default:
		out.VendorStatus = domain.StatusVerified
	}

	return out
}
