package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

var defaultRentGuideline = decimal.NewFromInt(30)

// CalculateRentAffordability applies the percentage-of-gross-income
// guideline to a renter's finances. A zero guideline means the standard
// 30%. The conservative figure additionally subtracts monthly debt
// obligations, floored at zero.
func CalculateRentAffordability(in domain.RentAffordabilityInput) (*domain.RentAffordability, error) {
	if in.AnnualIncome.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewInvalidInput("annualIncome", "annual income must be greater than 0")
	}
	if in.MonthlyDebt.IsNegative() {
		return nil, domain.NewInvalidInput("monthlyDebt", "monthly debt must not be negative")
	}

	guideline := in.GuidelinePercent
	if guideline.IsZero() {
		guideline = defaultRentGuideline
	}
	if guideline.IsNegative() {
		return nil, domain.NewInvalidInput("guidelinePercent", "guideline percent must not be negative")
	}

	maxRent := in.AnnualIncome.Div(twelve).Mul(guideline).Div(hundred)
	conservative := maxRent.Sub(in.MonthlyDebt)
	if conservative.IsNegative() {
		conservative = decimal.Zero
	}

	return &domain.RentAffordability{
		MaxMonthlyRent:          maxRent,
		ConservativeMonthlyRent: conservative,
		GuidelinePercent:        guideline,
	}, nil
}
