package mapper

import (
	"renovacampo/pkg/model"
	"renovacampo/pkg/money"
	"renovacampo/pkg/sanitizer"
	"renovacampo/pkg/taxid"
)

// MapInvestor maps an investor profile form. The tax id is reduced to its
// digits but not validated; callers run taxid.Validate before submission.
func (m *Mapper) MapInvestor(raw *model.RawFormInput) (*model.InvestorPayload, *Result) {
	r := newResolver(raw, m.aliases[model.KindInvestor])
	policy := m.policy(model.KindInvestor)

	p := &model.InvestorPayload{
		TaxID:         taxid.Clean(r.text(AttrTaxID)),
		Name:          sanitizer.SanitizeText(r.text(AttrName)),
		Email:         sanitizer.SanitizeEmail(r.text(AttrEmail)),
		Phone:         sanitizer.SanitizePhone(r.text(AttrPhone)),
		Address:       r.text(AttrAddress),
		InvestedFunds: 0,
		Active:        true,
	}

	loc := m.locator(model.KindInvestor).Decompose(p.Address)
	p.City, p.State = loc.City, loc.State
	if p.Address != "" && !loc.Parsed {
		r.degrade(AttrLocation)
	}

	p.TotalFunds = r.amount(AttrTotalFunds, func(v any) money.Result {
		return money.ParseResult(v, policy)
	})
	p.Description = r.text(AttrDescription)

	res, extra := r.finish()
	p.AdditionalData = extra
	return p, res
}
