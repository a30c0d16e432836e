package service

import "mortgage-agent/domain"

// ResolveBaseRate picks a lender's annual rate before any LTV adjustment.
//
// Order: the fixed rate when fixed is requested and published, then the
// variable rate, then reference index plus margin, then the fixed rate, and
// finally zero.
func ResolveBaseRate(lender domain.Lender, rateType domain.RateType) float64 {
	if rateType == domain.RateTypeFixed && lender.FixedRate != nil {
		return *lender.FixedRate
	}
	if lender.VariableRate != nil {
		return *lender.VariableRate
	}
	if lender.ReferenceIndex != nil && lender.Margin != nil {
		return *lender.ReferenceIndex + *lender.Margin
	}
	if lender.FixedRate != nil {
		return *lender.FixedRate
	}
	return 0
}

// LTVAdjustment returns the single tier add-on that applies at the given
// loan-to-value percentage. Tiers never stack; a threshold whose tier is not
// defined falls through to the next lower one.
func LTVAdjustment(tiers *domain.LTVTiers, ltv float64) float64 {
	if tiers == nil {
		return 0
	}

	switch {
	case ltv >= LTVThreshold95 && tiers.Tier95 != nil:
		return *tiers.Tier95
	case ltv >= LTVThreshold90 && tiers.Tier90 != nil:
		return *tiers.Tier90
	case ltv >= LTVThreshold80 && tiers.Tier80 != nil:
		return *tiers.Tier80
	}
	return 0
}
