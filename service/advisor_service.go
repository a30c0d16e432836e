package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

var ErrLenderNotOffered = errors.New("lender has no eligible offer for this request")

type OfferResult struct {
	CatalogVersion string                  `json:"catalog_version"`
	Offers         []domain.EvaluatedOffer `json:"offers"`
}

type AssessmentResult struct {
	CatalogVersion string                  `json:"catalog_version"`
	Report         domain.AssessmentReport `json:"report"`
}

// AdvisorService runs the offer engine and the affordability analyzer against
// the current catalog snapshot.
type AdvisorService struct {
	catalog repository.CatalogRepository
	log     zerolog.Logger
}

// NewAdvisorService creates a new AdvisorService reading lenders from catalog.
func NewAdvisorService(catalog repository.CatalogRepository, log zerolog.Logger) *AdvisorService {
	return &AdvisorService{
		catalog: catalog,
		log:     log.With().Str("component", "advisor").Logger(),
	}
}

// Lenders returns the current catalog snapshot.
func (s *AdvisorService) Lenders(ctx context.Context) (domain.CatalogSnapshot, error) {
	return s.catalog.Current(ctx)
}

// CompareOffers validates req and ranks every eligible lender for it.
func (s *AdvisorService) CompareOffers(
	ctx context.Context,
	req domain.BorrowerRequest,
) (OfferResult, error) {

	if err := ValidateRequest(req); err != nil {
		return OfferResult{}, err
	}

	snapshot, err := s.catalog.Current(ctx)
	if err != nil {
		return OfferResult{}, fmt.Errorf("load catalog: %w", err)
	}

	offers := EvaluateOffers(req, snapshot.Lenders)

	s.log.Debug().
		Str("catalog_version", snapshot.Version).
		Str("purpose", string(req.Purpose)).
		Str("rate_type", string(req.RateType)).
		Int("catalog_size", len(snapshot.Lenders)).
		Int("eligible", len(offers)).
		Msg("Offers evaluated")

	return OfferResult{
		CatalogVersion: snapshot.Version,
		Offers:         offers,
	}, nil
}

// AssessOffer evaluates req once more against a single snapshot and assesses
// the offer of lenderID within that same set.
func (s *AdvisorService) AssessOffer(
	ctx context.Context,
	req domain.BorrowerRequest,
	lenderID string,
) (AssessmentResult, error) {

	if err := ValidateRequest(req); err != nil {
		return AssessmentResult{}, err
	}

	snapshot, err := s.catalog.Current(ctx)
	if err != nil {
		return AssessmentResult{}, fmt.Errorf("load catalog: %w", err)
	}

	offers := EvaluateOffers(req, snapshot.Lenders)

	var target *domain.EvaluatedOffer
	for i := range offers {
		if offers[i].LenderID == lenderID {
			target = &offers[i]
			break
		}
	}
	if target == nil {
		return AssessmentResult{}, fmt.Errorf("%w: %s", ErrLenderNotOffered, lenderID)
	}

	report, err := Assess(*target, offers, req.MonthlyIncome, req.RateType)
	if err != nil {
		return AssessmentResult{}, err
	}

	s.log.Debug().
		Str("catalog_version", snapshot.Version).
		Str("lender_id", lenderID).
		Int("rank", report.Comparison.Rank).
		Str("risk", string(report.Risk.Level)).
		Int("match_score", report.Match.Score).
		Msg("Offer assessed")

	return AssessmentResult{
		CatalogVersion: snapshot.Version,
		Report:         report,
	}, nil
}
