package service

const (
	MaxLoanAmount = 1_000_000_000.0
	MaxTermYears  = 50
	MinTermYears  = 1

	// Offer scoring weights, summing to 1.
	CostWeight = 0.5
	RateWeight = 0.5

	TopTierCount = 3

	// LTV thresholds in percent, checked from highest to lowest.
	LTVThreshold95 = 95.0
	LTVThreshold90 = 90.0
	LTVThreshold80 = 80.0

	// DTI tier upper bounds in percent, inclusive.
	DTIExcellentMax  = 20.0
	DTIGoodMax       = 30.0
	DTIModerateMax   = 40.0
	DTIRiskyMax      = 50.0
	AffordableDTIMax = DTIModerateMax

	// Offers whose total cost differs by less than this are ranked by
	// effective annual cost instead.
	RankCostTieThreshold = 1000.0

	TopOfferRank = 3
)

// RateShocks are the percentage-point increases simulated for variable-rate
// offers.
var RateShocks = []float64{1, 2, 3}
