package service

import (
	"errors"
	"fmt"

	"mortgage-agent/domain"
)

var ErrInvalidRequest = errors.New("invalid request")

// ValidateRequest performs the range and required-field checks the engine
// relies on. The engine itself never re-validates.
func ValidateRequest(req domain.BorrowerRequest) error {
	if req.LoanAmount <= 0 {
		return fmt.Errorf("%w: loan amount must be positive", ErrInvalidRequest)
	}
	if req.LoanAmount > MaxLoanAmount {
		return fmt.Errorf("%w: loan amount exceeds the maximum of %.2f", ErrInvalidRequest, MaxLoanAmount)
	}
	if req.DownPayment < 0 {
		return fmt.Errorf("%w: down payment cannot be negative", ErrInvalidRequest)
	}
	if req.TermYears < MinTermYears || req.TermYears > MaxTermYears {
		return fmt.Errorf("%w: term must be between %d and %d years", ErrInvalidRequest, MinTermYears, MaxTermYears)
	}
	if req.MonthlyIncome <= 0 {
		return fmt.Errorf("%w: monthly income must be positive", ErrInvalidRequest)
	}

	switch req.Purpose {
	case domain.PurposePurchase, domain.PurposeRefinance, domain.PurposeConstruction:
	default:
		return fmt.Errorf("%w: unknown purpose %q", ErrInvalidRequest, req.Purpose)
	}

	switch req.RateType {
	case domain.RateTypeFixed, domain.RateTypeVariable:
	default:
		return fmt.Errorf("%w: unknown rate type %q", ErrInvalidRequest, req.RateType)
	}

	return nil
}
