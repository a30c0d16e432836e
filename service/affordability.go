package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"mortgage-agent/domain"
)

var (
	ErrOfferNotInSet = errors.New("offer is not part of the evaluated set")
	ErrInvalidIncome = errors.New("monthly income must be positive")
)

// Assess builds the affordability report for target. offers must be the full
// result of the EvaluateOffers call that produced target, otherwise the
// relative figures are meaningless.
func Assess(
	target domain.EvaluatedOffer,
	offers []domain.EvaluatedOffer,
	income float64,
	rateType domain.RateType,
) (domain.AssessmentReport, error) {

	if income <= 0 {
		return domain.AssessmentReport{}, ErrInvalidIncome
	}
	if !containsOffer(offers, target.LenderID) {
		return domain.AssessmentReport{}, fmt.Errorf("%w: lender %s", ErrOfferNotInSet, target.LenderID)
	}

	affordability := classifyAffordability(target.MonthlyPayment, income)
	comparison := compareWithSet(target, offers)
	risk := simulateRateRisk(target, income, rateType)

	return domain.AssessmentReport{
		Offer:         target,
		Affordability: affordability,
		Comparison:    comparison,
		Risk:          risk,
		Match:         matchOffer(affordability, comparison, risk, rateType),
	}, nil
}

func containsOffer(offers []domain.EvaluatedOffer, lenderID string) bool {
	for _, o := range offers {
		if o.LenderID == lenderID {
			return true
		}
	}
	return false
}

// DTIPercent returns the share of income taken by payment, in percent.
func DTIPercent(payment, income float64) float64 {
	return payment / income * 100
}

// ClassifyDTI maps a DTI percentage onto its affordability tier.
func ClassifyDTI(dti float64) domain.AffordabilityTier {
	switch {
	case dti <= DTIExcellentMax:
		return domain.AffordabilityExcellent
	case dti <= DTIGoodMax:
		return domain.AffordabilityGood
	case dti <= DTIModerateMax:
		return domain.AffordabilityModerate
	case dti <= DTIRiskyMax:
		return domain.AffordabilityRisky
	default:
		return domain.AffordabilityCritical
	}
}

func classifyAffordability(payment, income float64) domain.Affordability {
	dti := DTIPercent(payment, income)
	remaining := income - payment

	return domain.Affordability{
		DTIPercent:         dti,
		Tier:               ClassifyDTI(dti),
		Affordable:         dti <= AffordableDTIMax,
		RemainingIncome:    remaining,
		RemainingIncomePct: remaining / income * 100,
	}
}

func compareWithSet(target domain.EvaluatedOffer, offers []domain.EvaluatedOffer) domain.Comparison {
	var sumPayment, sumCost, sumEffective float64
	for _, o := range offers {
		sumPayment += o.MonthlyPayment
		sumCost += o.TotalCost
		sumEffective += o.EffectiveAnnualCost
	}
	count := float64(len(offers))

	rank := RankOf(target.LenderID, offers)

	return domain.Comparison{
		Rank:                rank,
		SetSize:             len(offers),
		TopOffer:            rank > 0 && rank <= TopOfferRank,
		MonthlyPayment:      deviation(target.MonthlyPayment, sumPayment/count),
		TotalCost:           deviation(target.TotalCost, sumCost/count),
		EffectiveAnnualCost: deviation(target.EffectiveAnnualCost, sumEffective/count),
	}
}

func deviation(value, mean float64) domain.Deviation {
	d := domain.Deviation{
		Mean:     mean,
		Absolute: value - mean,
	}
	if mean != 0 {
		d.Percent = d.Absolute / mean * 100
	}
	return d
}

// RankOf returns the 1-based position of lenderID after ordering offers by
// total cost, with near-equal costs ordered by effective annual cost. It
// returns 0 when the lender is not in the set.
func RankOf(lenderID string, offers []domain.EvaluatedOffer) int {
	ranked := make([]domain.EvaluatedOffer, len(offers))
	copy(ranked, offers)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if math.Abs(a.TotalCost-b.TotalCost) < RankCostTieThreshold {
			return a.EffectiveAnnualCost < b.EffectiveAnnualCost
		}
		return a.TotalCost < b.TotalCost
	})

	for i, o := range ranked {
		if o.LenderID == lenderID {
			return i + 1
		}
	}
	return 0
}

// simulateRateRisk stresses variable-rate offers with the scripted rate
// shocks. Fixed-rate offers are insulated from index moves and come back low
// risk with no scenarios.
func simulateRateRisk(target domain.EvaluatedOffer, income float64, rateType domain.RateType) domain.Risk {
	scenarios := []domain.RateScenario{}
	if rateType != domain.RateTypeVariable {
		return domain.Risk{Level: domain.RiskLow, Scenarios: scenarios}
	}

	worstDTI := 0.0
	for _, shock := range RateShocks {
		rate := target.Rate + shock
		payment := MonthlyPayment(target.LoanAmount, rate, target.TermYears)
		dti := DTIPercent(payment, income)

		scenario := domain.RateScenario{
			RateIncrease:    shock,
			Rate:            rate,
			MonthlyPayment:  payment,
			PaymentIncrease: payment - target.MonthlyPayment,
			DTIPercent:      dti,
			Affordable:      dti <= AffordableDTIMax,
		}
		if dti > AffordableDTIMax {
			scenario.Warning = fmt.Sprintf(
				"a %.0f point rate increase would take %.1f%% of monthly income",
				shock, dti,
			)
		}

		worstDTI = math.Max(worstDTI, dti)
		scenarios = append(scenarios, scenario)
	}

	level := domain.RiskLow
	switch {
	case worstDTI > DTIRiskyMax:
		level = domain.RiskHigh
	case worstDTI > AffordableDTIMax:
		level = domain.RiskMedium
	}

	return domain.Risk{Level: level, Scenarios: scenarios}
}
