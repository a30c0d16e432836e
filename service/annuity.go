package service

import "math"

// MonthlyPayment returns the fixed monthly annuity payment that amortizes
// principal over termYears at annualRate percent.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 {
		return 0
	}

	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		return principal / n
	}

	factor := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * factor / (factor - 1)
}

// approximateEffectiveCost annualizes the ratio of total cost to principal.
// It is a comparison indicator only, not a regulatory effective rate.
func approximateEffectiveCost(totalCost, principal float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 || totalCost <= 0 {
		return 0
	}
	return (math.Pow(totalCost/principal, 1/float64(termYears)) - 1) * 100
}
