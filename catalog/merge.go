package catalog

import (
	"fmt"
	"maps"

	"mortgage-agent/domain"
)

// LenderPatch is one record from a catalog feed. Nil fields leave the
// previous value untouched, so feeds may carry only what changed.
type LenderPatch struct {
	ID                  string                      `json:"id"`
	Delisted            bool                        `json:"delisted,omitempty"`
	Name                *string                     `json:"name,omitempty"`
	VariableRate        *float64                    `json:"variable_rate,omitempty"`
	FixedRate           *float64                    `json:"fixed_rate,omitempty"`
	ReferenceIndex      *float64                    `json:"reference_index,omitempty"`
	Margin              *float64                    `json:"margin,omitempty"`
	CommissionRate      *float64                    `json:"commission_rate,omitempty"`
	InsuranceRate       *float64                    `json:"insurance_rate,omitempty"`
	MinLoanAmount       *float64                    `json:"min_loan_amount,omitempty"`
	MaxLoanAmount       *float64                    `json:"max_loan_amount,omitempty"`
	MinTermYears        *int                        `json:"min_term_years,omitempty"`
	MaxTermYears        *int                        `json:"max_term_years,omitempty"`
	MinDownPaymentPct   *float64                    `json:"min_down_payment_pct,omitempty"`
	Purposes            []domain.Purpose            `json:"purposes,omitempty"`
	RateTypes           []domain.RateType           `json:"rate_types,omitempty"`
	LTVTiers            *domain.LTVTiers            `json:"ltv_tiers,omitempty"`
	EffectiveAnnualCost map[domain.RateType]float64 `json:"effective_annual_cost,omitempty"`
}

func (p LenderPatch) apply(l domain.Lender) domain.Lender {
	l.ID = p.ID
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.VariableRate != nil {
		l.VariableRate = p.VariableRate
	}
	if p.FixedRate != nil {
		l.FixedRate = p.FixedRate
	}
	if p.ReferenceIndex != nil {
		l.ReferenceIndex = p.ReferenceIndex
	}
	if p.Margin != nil {
		l.Margin = p.Margin
	}
	if p.CommissionRate != nil {
		l.CommissionRate = *p.CommissionRate
	}
	if p.InsuranceRate != nil {
		l.InsuranceRate = *p.InsuranceRate
	}
	if p.MinLoanAmount != nil {
		l.MinLoanAmount = *p.MinLoanAmount
	}
	if p.MaxLoanAmount != nil {
		l.MaxLoanAmount = *p.MaxLoanAmount
	}
	if p.MinTermYears != nil {
		l.MinTermYears = *p.MinTermYears
	}
	if p.MaxTermYears != nil {
		l.MaxTermYears = *p.MaxTermYears
	}
	if p.MinDownPaymentPct != nil {
		l.MinDownPaymentPct = *p.MinDownPaymentPct
	}
	if p.Purposes != nil {
		l.Purposes = p.Purposes
	}
	if p.RateTypes != nil {
		l.RateTypes = p.RateTypes
	}
	if p.LTVTiers != nil {
		l.LTVTiers = p.LTVTiers
	}
	if len(p.EffectiveAnnualCost) > 0 {
		merged := maps.Clone(l.EffectiveAnnualCost)
		if merged == nil {
			merged = make(map[domain.RateType]float64, len(p.EffectiveAnnualCost))
		}
		maps.Copy(merged, p.EffectiveAnnualCost)
		l.EffectiveAnnualCost = merged
	}
	return l
}

// Merge applies patches on top of previous and returns a new lender list.
// previous is never modified. Patches that would leave a record malformed are
// rejected and reported; the previous version of that record, if any, is
// kept.
func Merge(previous []domain.Lender, patches []LenderPatch) ([]domain.Lender, []error) {
	merged := make([]domain.Lender, len(previous))
	copy(merged, previous)

	index := make(map[string]int, len(merged))
	for i, l := range merged {
		index[l.ID] = i
	}

	var rejected []error
	delisted := make(map[string]bool)

	for _, patch := range patches {
		if patch.ID == "" {
			rejected = append(rejected, fmt.Errorf("%w: patch without id", domain.ErrMalformedLender))
			continue
		}
		if patch.Delisted {
			delisted[patch.ID] = true
			continue
		}

		pos, exists := index[patch.ID]
		var base domain.Lender
		if exists {
			base = merged[pos]
		}

		updated := patch.apply(base)
		if err := domain.ValidateLender(updated); err != nil {
			rejected = append(rejected, err)
			continue
		}

		if exists {
			merged[pos] = updated
		} else {
			index[patch.ID] = len(merged)
			merged = append(merged, updated)
		}
		delete(delisted, patch.ID)
	}

	if len(delisted) == 0 {
		return merged, rejected
	}

	kept := merged[:0:0]
	for _, l := range merged {
		if !delisted[l.ID] {
			kept = append(kept, l)
		}
	}
	return kept, rejected
}
