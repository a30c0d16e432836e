package domain

// EvaluatedOffer is the per-lender result of one evaluation. It is rebuilt on
// every request.
type EvaluatedOffer struct {
	LenderID            string  `json:"lender_id"`
	LenderName          string  `json:"lender_name"`
	LoanAmount          float64 `json:"loan_amount"`
	TermYears           int     `json:"term_years"`
	Rate                float64 `json:"rate"`
	LTVAdjustment       float64 `json:"ltv_adjustment"`
	MonthlyPayment      float64 `json:"monthly_payment"`
	TotalCost           float64 `json:"total_cost"`
	TotalInterest       float64 `json:"total_interest"`
	Commission          float64 `json:"commission"`
	Insurance           float64 `json:"insurance"`
	EffectiveAnnualCost float64 `json:"effective_annual_cost"`
	Score               int     `json:"score"`
	TopTier             bool    `json:"top_tier"`
}
