package domain

type Purpose string

const (
	PurposePurchase     Purpose = "purchase"
	PurposeRefinance    Purpose = "refinance"
	PurposeConstruction Purpose = "construction"
)

type RateType string

const (
	RateTypeFixed    RateType = "fixed"
	RateTypeVariable RateType = "variable"
)

// BorrowerRequest holds the loan parameters a borrower asks for.
type BorrowerRequest struct {
	LoanAmount    float64  `json:"loan_amount"`
	TermYears     int      `json:"term_years"`
	DownPayment   float64  `json:"down_payment"`
	MonthlyIncome float64  `json:"monthly_income"`
	Purpose       Purpose  `json:"purpose"`
	RateType      RateType `json:"rate_type"`
}

// PropertyValue is the loan amount plus the down payment.
func (r BorrowerRequest) PropertyValue() float64 {
	return r.LoanAmount + r.DownPayment
}

// DownPaymentPct returns the down payment as a percentage of the property value.
func (r BorrowerRequest) DownPaymentPct() float64 {
	value := r.PropertyValue()
	if value <= 0 {
		return 0
	}
	return r.DownPayment / value * 100
}

// LTV returns the loan-to-value ratio as a percentage.
func (r BorrowerRequest) LTV() float64 {
	value := r.PropertyValue()
	if value <= 0 {
		return 0
	}
	return r.LoanAmount / value * 100
}
