package domain

import (
	"errors"
	"fmt"
)

var ErrMalformedLender = errors.New("malformed lender record")

// LTVTiers are percentage-point add-ons applied to the resolved rate when the
// loan-to-value ratio reaches 80, 90 or 95 percent.
type LTVTiers struct {
	Tier80 *float64 `json:"tier_80,omitempty"`
	Tier90 *float64 `json:"tier_90,omitempty"`
	Tier95 *float64 `json:"tier_95,omitempty"`
}

// Lender is one catalog record. Rate fields are optional because catalog
// sources are often only partially populated.
type Lender struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	VariableRate        *float64             `json:"variable_rate,omitempty"`
	FixedRate           *float64             `json:"fixed_rate,omitempty"`
	ReferenceIndex      *float64             `json:"reference_index,omitempty"`
	Margin              *float64             `json:"margin,omitempty"`
	CommissionRate      float64              `json:"commission_rate"`
	InsuranceRate       float64              `json:"insurance_rate"`
	MinLoanAmount       float64              `json:"min_loan_amount"`
	MaxLoanAmount       float64              `json:"max_loan_amount"`
	MinTermYears        int                  `json:"min_term_years"`
	MaxTermYears        int                  `json:"max_term_years"`
	MinDownPaymentPct   float64              `json:"min_down_payment_pct"`
	Purposes            []Purpose            `json:"purposes"`
	RateTypes           []RateType           `json:"rate_types,omitempty"`
	LTVTiers            *LTVTiers            `json:"ltv_tiers,omitempty"`
	EffectiveAnnualCost map[RateType]float64 `json:"effective_annual_cost,omitempty"`
}

// SupportsPurpose reports whether the lender finances the given purpose.
func (l Lender) SupportsPurpose(p Purpose) bool {
	for _, candidate := range l.Purposes {
		if candidate == p {
			return true
		}
	}
	return false
}

// SupportsRateType reports whether the lender offers the given rate type.
// An empty rate type list means the lender is unrestricted.
func (l Lender) SupportsRateType(t RateType) bool {
	if len(l.RateTypes) == 0 {
		return true
	}
	for _, candidate := range l.RateTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ValidateLender checks the fields every catalog record must carry.
func ValidateLender(l Lender) error {
	switch {
	case l.ID == "":
		return fmt.Errorf("%w: missing id", ErrMalformedLender)
	case l.Name == "":
		return fmt.Errorf("%w: lender %s: missing name", ErrMalformedLender, l.ID)
	case l.MaxLoanAmount <= 0 || l.MinLoanAmount > l.MaxLoanAmount:
		return fmt.Errorf("%w: lender %s: invalid loan amount range", ErrMalformedLender, l.ID)
	case l.MaxTermYears <= 0 || l.MinTermYears > l.MaxTermYears:
		return fmt.Errorf("%w: lender %s: invalid term range", ErrMalformedLender, l.ID)
	case len(l.Purposes) == 0:
		return fmt.Errorf("%w: lender %s: no supported purposes", ErrMalformedLender, l.ID)
	}
	return nil
}
