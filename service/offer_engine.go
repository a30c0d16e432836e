package service

import (
	"math"
	"sort"

	"mortgage-agent/domain"
)

// EvaluateOffers filters the catalog down to the lenders eligible for req,
// prices each of them and returns the offers sorted by total cost ascending.
// Lenders that do not qualify are dropped silently, so the result is an empty
// slice when nobody qualifies.
func EvaluateOffers(req domain.BorrowerRequest, lenders []domain.Lender) []domain.EvaluatedOffer {
	offers := make([]domain.EvaluatedOffer, 0, len(lenders))

	for _, lender := range lenders {
		if !IsEligible(req, lender) {
			continue
		}
		offers = append(offers, priceOffer(req, lender))
	}

	if len(offers) == 0 {
		return offers
	}

	// Scores depend on the min/max of the whole eligible set, so they can
	// only be assigned after every offer is priced.
	scoreOffers(offers)

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].TotalCost < offers[j].TotalCost
	})

	for i := range offers {
		offers[i].TopTier = i < TopTierCount
	}

	return offers
}

// IsEligible applies the lender's amount, term, down payment, purpose and
// rate type restrictions to req.
func IsEligible(req domain.BorrowerRequest, lender domain.Lender) bool {
	if req.LoanAmount < lender.MinLoanAmount || req.LoanAmount > lender.MaxLoanAmount {
		return false
	}
	if req.TermYears < lender.MinTermYears || req.TermYears > lender.MaxTermYears {
		return false
	}
	if req.DownPaymentPct() < lender.MinDownPaymentPct {
		return false
	}
	if !lender.SupportsPurpose(req.Purpose) {
		return false
	}
	return lender.SupportsRateType(req.RateType)
}

func priceOffer(req domain.BorrowerRequest, lender domain.Lender) domain.EvaluatedOffer {
	adjustment := LTVAdjustment(lender.LTVTiers, req.LTV())
	rate := ResolveBaseRate(lender, req.RateType) + adjustment

	months := float64(req.TermYears * 12)
	payment := MonthlyPayment(req.LoanAmount, rate, req.TermYears)
	totalPaid := payment * months

	commission := req.LoanAmount * lender.CommissionRate / 100
	insurance := req.LoanAmount * lender.InsuranceRate / 100 * float64(req.TermYears)
	totalCost := totalPaid + commission + insurance

	effectiveCost, ok := lender.EffectiveAnnualCost[req.RateType]
	if !ok {
		effectiveCost = approximateEffectiveCost(totalCost, req.LoanAmount, req.TermYears)
	}

	return domain.EvaluatedOffer{
		LenderID:            lender.ID,
		LenderName:          lender.Name,
		LoanAmount:          req.LoanAmount,
		TermYears:           req.TermYears,
		Rate:                rate,
		LTVAdjustment:       adjustment,
		MonthlyPayment:      payment,
		TotalCost:           totalCost,
		TotalInterest:       totalPaid - req.LoanAmount,
		Commission:          commission,
		Insurance:           insurance,
		EffectiveAnnualCost: effectiveCost,
	}
}

// scoreOffers assigns each offer a 0-100 score from its min-max normalized
// total cost and rate. Lower is better on both axes.
func scoreOffers(offers []domain.EvaluatedOffer) {
	minCost, maxCost := math.Inf(1), math.Inf(-1)
	minRate, maxRate := math.Inf(1), math.Inf(-1)
	for _, o := range offers {
		minCost = math.Min(minCost, o.TotalCost)
		maxCost = math.Max(maxCost, o.TotalCost)
		minRate = math.Min(minRate, o.Rate)
		maxRate = math.Max(maxRate, o.Rate)
	}

	for i := range offers {
		costScore := normalizeInverse(offers[i].TotalCost, minCost, maxCost)
		rateScore := normalizeInverse(offers[i].Rate, minRate, maxRate)
		offers[i].Score = int(math.Round(CostWeight*costScore + RateWeight*rateScore))
	}
}

// normalizeInverse maps value onto 0-100 where lo scores 100 and hi scores 0.
// A degenerate range gives full marks.
func normalizeInverse(value, lo, hi float64) float64 {
	spread := hi - lo
	if spread <= 0 {
		return 100
	}
	return (hi - value) / spread * 100
}
