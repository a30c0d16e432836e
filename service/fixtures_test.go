package service

import "mortgage-agent/domain"

func ptr[T any](v T) *T { return &v }

func baseLender(id string) domain.Lender {
	return domain.Lender{
		ID:                id,
		Name:              "Lender " + id,
		VariableRate:      ptr(3.5),
		CommissionRate:    1,
		InsuranceRate:     0.3,
		MinLoanAmount:     10_000,
		MaxLoanAmount:     2_000_000,
		MinTermYears:      5,
		MaxTermYears:      35,
		MinDownPaymentPct: 10,
		Purposes:          []domain.Purpose{domain.PurposePurchase, domain.PurposeRefinance},
	}
}

// testCatalog has ten lenders, none of which finances construction.
func testCatalog() []domain.Lender {
	withVariable := func(l domain.Lender, rate float64) domain.Lender {
		l.VariableRate = ptr(rate)
		return l
	}

	a := withVariable(baseLender("a"), 3.2)
	a.FixedRate = ptr(3.9)

	b := withVariable(baseLender("b"), 3.4)
	b.LTVTiers = &domain.LTVTiers{Tier80: ptr(0.2), Tier90: ptr(0.4)}

	c := baseLender("c")
	c.VariableRate = nil
	c.ReferenceIndex = ptr(2.9)
	c.Margin = ptr(0.6)
	c.CommissionRate = 0

	d := withVariable(baseLender("d"), 3.1)
	d.MinDownPaymentPct = 20

	e := withVariable(baseLender("e"), 3.0)
	e.MaxLoanAmount = 400_000

	f := baseLender("f")
	f.VariableRate = nil
	f.FixedRate = ptr(4.2)
	f.RateTypes = []domain.RateType{domain.RateTypeFixed}

	g := withVariable(baseLender("g"), 3.7)
	g.EffectiveAnnualCost = map[domain.RateType]float64{domain.RateTypeVariable: 4.05}

	h := withVariable(baseLender("h"), 3.3)
	h.MaxTermYears = 20

	i := withVariable(baseLender("i"), 3.6)
	i.InsuranceRate = 0.1
	i.CommissionRate = 2

	j := withVariable(baseLender("j"), 3.25)
	j.RateTypes = []domain.RateType{domain.RateTypeVariable}
	j.LTVTiers = &domain.LTVTiers{Tier80: ptr(0.15)}

	return []domain.Lender{a, b, c, d, e, f, g, h, i, j}
}

func scenarioRequest() domain.BorrowerRequest {
	return domain.BorrowerRequest{
		LoanAmount:    500_000,
		TermYears:     25,
		DownPayment:   100_000,
		MonthlyIncome: 8_000,
		Purpose:       domain.PurposePurchase,
		RateType:      domain.RateTypeVariable,
	}
}
