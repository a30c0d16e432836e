package domain

type AffordabilityTier string

const (
	AffordabilityExcellent AffordabilityTier = "excellent"
	AffordabilityGood      AffordabilityTier = "good"
	AffordabilityModerate  AffordabilityTier = "moderate"
	AffordabilityRisky     AffordabilityTier = "risky"
	AffordabilityCritical  AffordabilityTier = "critical"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type MatchTier string

const (
	MatchExcellent MatchTier = "excellent"
	MatchGood      MatchTier = "good"
	MatchModerate  MatchTier = "moderate"
	MatchPoor      MatchTier = "poor"
)

type Affordability struct {
	DTIPercent         float64           `json:"dti_percent"`
	Tier               AffordabilityTier `json:"tier"`
	Affordable         bool              `json:"affordable"`
	RemainingIncome    float64           `json:"remaining_income"`
	RemainingIncomePct float64           `json:"remaining_income_pct"`
}

// Deviation compares one figure of the target offer against the set mean.
type Deviation struct {
	Mean     float64 `json:"mean"`
	Absolute float64 `json:"absolute"`
	Percent  float64 `json:"percent"`
}

type Comparison struct {
	Rank                int       `json:"rank"`
	SetSize             int       `json:"set_size"`
	TopOffer            bool      `json:"top_offer"`
	MonthlyPayment      Deviation `json:"monthly_payment"`
	TotalCost           Deviation `json:"total_cost"`
	EffectiveAnnualCost Deviation `json:"effective_annual_cost"`
}

// RateScenario is one rate-shock simulation on a variable-rate offer.
type RateScenario struct {
	RateIncrease    float64 `json:"rate_increase"`
	Rate            float64 `json:"rate"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	PaymentIncrease float64 `json:"payment_increase"`
	DTIPercent      float64 `json:"dti_percent"`
	Affordable      bool    `json:"affordable"`
	Warning         string  `json:"warning,omitempty"`
}

type Risk struct {
	Level     RiskLevel      `json:"level"`
	Scenarios []RateScenario `json:"scenarios"`
}

type Match struct {
	Score     int       `json:"score"`
	Tier      MatchTier `json:"tier"`
	Strengths []string  `json:"strengths"`
	Concerns  []string  `json:"concerns"`
}

// AssessmentReport is the affordability and risk analysis of one offer within
// the set it was evaluated with.
type AssessmentReport struct {
	Offer         EvaluatedOffer `json:"offer"`
	Affordability Affordability  `json:"affordability"`
	Comparison    Comparison     `json:"comparison"`
	Risk          Risk           `json:"risk"`
	Match         Match          `json:"match"`
}
