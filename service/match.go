package service

import (
	"fmt"
	"math"

	"mortgage-agent/domain"
)

func affordabilityPoints(tier domain.AffordabilityTier) int {
	switch tier {
	case domain.AffordabilityExcellent:
		return 40
	case domain.AffordabilityGood:
		return 35
	case domain.AffordabilityModerate:
		return 25
	case domain.AffordabilityRisky:
		return 15
	default:
		return 5
	}
}

func rankPoints(rank int) int {
	switch {
	case rank == 1:
		return 30
	case rank <= 3:
		return 25
	case rank <= 5:
		return 20
	case rank <= 10:
		return 15
	default:
		return 10
	}
}

func riskPoints(level domain.RiskLevel) int {
	switch level {
	case domain.RiskLow:
		return 30
	case domain.RiskMedium:
		return 20
	default:
		return 10
	}
}

// MatchTierFor maps a 0-100 match score onto its tier.
func MatchTierFor(score int) domain.MatchTier {
	switch {
	case score >= 80:
		return domain.MatchExcellent
	case score >= 60:
		return domain.MatchGood
	case score >= 40:
		return domain.MatchModerate
	default:
		return domain.MatchPoor
	}
}

func matchOffer(
	affordability domain.Affordability,
	comparison domain.Comparison,
	risk domain.Risk,
	rateType domain.RateType,
) domain.Match {
	score := affordabilityPoints(affordability.Tier) +
		rankPoints(comparison.Rank) +
		riskPoints(risk.Level)

	strengths := []string{}
	concerns := []string{}

	switch affordability.Tier {
	case domain.AffordabilityExcellent, domain.AffordabilityGood:
		strengths = append(strengths, fmt.Sprintf(
			"Monthly payment takes only %.1f%% of income", affordability.DTIPercent))
	case domain.AffordabilityRisky:
		concerns = append(concerns, fmt.Sprintf(
			"Monthly payment takes %.1f%% of income, above the 40%% guideline", affordability.DTIPercent))
	case domain.AffordabilityCritical:
		concerns = append(concerns, fmt.Sprintf(
			"Monthly payment takes %.1f%% of income, more than half", affordability.DTIPercent))
	}

	switch {
	case comparison.Rank == 1:
		strengths = append(strengths, fmt.Sprintf(
			"Lowest total cost of %d eligible offers", comparison.SetSize))
	case comparison.TopOffer:
		strengths = append(strengths, "Among the three cheapest eligible offers")
	case comparison.Rank > 5:
		concerns = append(concerns, fmt.Sprintf(
			"%d eligible offers have a lower total cost", comparison.Rank-1))
	}

	if comparison.TotalCost.Percent < 0 {
		strengths = append(strengths, fmt.Sprintf(
			"Total cost is %.1f%% below the average offer", math.Abs(comparison.TotalCost.Percent)))
	}

	switch {
	case rateType == domain.RateTypeFixed:
		strengths = append(strengths, "Fixed rate protects the payment from rate increases")
	case risk.Level == domain.RiskLow:
		strengths = append(strengths, "Payment stays affordable with a 3 point rate increase")
	case risk.Level == domain.RiskMedium:
		concerns = append(concerns, "A rate increase could push the payment above 40% of income")
	case risk.Level == domain.RiskHigh:
		concerns = append(concerns, "A rate increase could push the payment above 50% of income")
	}

	return domain.Match{
		Score:     score,
		Tier:      MatchTierFor(score),
		Strengths: strengths,
		Concerns:  concerns,
	}
}
