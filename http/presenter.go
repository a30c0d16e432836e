package http

import (
	"github.com/shopspring/decimal"

	"mortgage-agent/domain"
	"mortgage-agent/service"
)

// money rounds an amount to cents. decimal marshals as a JSON string, which
// keeps clients from reintroducing float noise.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

func points(v float64) string {
	return "+" + decimal.NewFromFloat(v).StringFixed(2) + "pp"
}

type OfferView struct {
	Position            int             `json:"position"`
	LenderID            string          `json:"lender_id"`
	LenderName          string          `json:"lender_name"`
	Rate                string          `json:"rate"`
	LTVAdjustment       string          `json:"ltv_adjustment"`
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalInterest       decimal.Decimal `json:"total_interest"`
	Commission          decimal.Decimal `json:"commission"`
	Insurance           decimal.Decimal `json:"insurance"`
	EffectiveAnnualCost string          `json:"effective_annual_cost"`
	Score               int             `json:"score"`
	TopTier             bool            `json:"top_tier"`
}

type OffersResponse struct {
	CatalogVersion string      `json:"catalog_version"`
	Count          int         `json:"count"`
	Offers         []OfferView `json:"offers"`
}

type AffordabilityView struct {
	DTI                string                   `json:"dti"`
	Tier               domain.AffordabilityTier `json:"tier"`
	Affordable         bool                     `json:"affordable"`
	RemainingIncome    decimal.Decimal          `json:"remaining_income"`
	RemainingIncomePct string                   `json:"remaining_income_pct"`
}

type DeviationView struct {
	Average    decimal.Decimal `json:"average"`
	Difference decimal.Decimal `json:"difference"`
	Percent    string          `json:"percent"`
}

type ComparisonView struct {
	Rank                int           `json:"rank"`
	SetSize             int           `json:"set_size"`
	TopOffer            bool          `json:"top_offer"`
	MonthlyPayment      DeviationView `json:"monthly_payment"`
	TotalCost           DeviationView `json:"total_cost"`
	EffectiveAnnualCost DeviationView `json:"effective_annual_cost"`
}

type ScenarioView struct {
	RateIncrease    string          `json:"rate_increase"`
	Rate            string          `json:"rate"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	PaymentIncrease decimal.Decimal `json:"payment_increase"`
	DTI             string          `json:"dti"`
	Affordable      bool            `json:"affordable"`
	Warning         string          `json:"warning,omitempty"`
}

type RiskView struct {
	Level     domain.RiskLevel `json:"level"`
	Scenarios []ScenarioView   `json:"scenarios"`
}

type AssessmentResponse struct {
	CatalogVersion string            `json:"catalog_version"`
	Offer          OfferView         `json:"offer"`
	Affordability  AffordabilityView `json:"affordability"`
	Comparison     ComparisonView    `json:"comparison"`
	Risk           RiskView          `json:"risk"`
	Match          domain.Match      `json:"match"`
}

func presentOffer(position int, o domain.EvaluatedOffer) OfferView {
	return OfferView{
		Position:            position,
		LenderID:            o.LenderID,
		LenderName:          o.LenderName,
		Rate:                percent(o.Rate),
		LTVAdjustment:       points(o.LTVAdjustment),
		MonthlyPayment:      money(o.MonthlyPayment),
		TotalCost:           money(o.TotalCost),
		TotalInterest:       money(o.TotalInterest),
		Commission:          money(o.Commission),
		Insurance:           money(o.Insurance),
		EffectiveAnnualCost: percent(o.EffectiveAnnualCost),
		Score:               o.Score,
		TopTier:             o.TopTier,
	}
}

func presentOffers(result service.OfferResult) OffersResponse {
	views := make([]OfferView, 0, len(result.Offers))
	for i, o := range result.Offers {
		views = append(views, presentOffer(i+1, o))
	}
	return OffersResponse{
		CatalogVersion: result.CatalogVersion,
		Count:          len(views),
		Offers:         views,
	}
}

func presentDeviation(d domain.Deviation) DeviationView {
	return DeviationView{
		Average:    money(d.Mean),
		Difference: money(d.Absolute),
		Percent:    percent(d.Percent),
	}
}

func presentAssessment(result service.AssessmentResult) AssessmentResponse {
	report := result.Report

	scenarios := make([]ScenarioView, 0, len(report.Risk.Scenarios))
	for _, s := range report.Risk.Scenarios {
		scenarios = append(scenarios, ScenarioView{
			RateIncrease:    points(s.RateIncrease),
			Rate:            percent(s.Rate),
			MonthlyPayment:  money(s.MonthlyPayment),
			PaymentIncrease: money(s.PaymentIncrease),
			DTI:             percent(s.DTIPercent),
			Affordable:      s.Affordable,
			Warning:         s.Warning,
		})
	}

	return AssessmentResponse{
		CatalogVersion: result.CatalogVersion,
		Offer:          presentOffer(report.Comparison.Rank, report.Offer),
		Affordability: AffordabilityView{
			DTI:                percent(report.Affordability.DTIPercent),
			Tier:               report.Affordability.Tier,
			Affordable:         report.Affordability.Affordable,
			RemainingIncome:    money(report.Affordability.RemainingIncome),
			RemainingIncomePct: percent(report.Affordability.RemainingIncomePct),
		},
		Comparison: ComparisonView{
			Rank:                report.Comparison.Rank,
			SetSize:             report.Comparison.SetSize,
			TopOffer:            report.Comparison.TopOffer,
			MonthlyPayment:      presentDeviation(report.Comparison.MonthlyPayment),
			TotalCost:           presentDeviation(report.Comparison.TotalCost),
			EffectiveAnnualCost: presentDeviation(report.Comparison.EffectiveAnnualCost),
		},
		Risk: RiskView{
			Level:     report.Risk.Level,
			Scenarios: scenarios,
		},
		Match: report.Match,
	}
}
