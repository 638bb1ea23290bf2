package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

const monthsPerYear = 12

var (
	hundred     = decimal.NewFromInt(100)
	twelve      = decimal.NewFromInt(12)
	oneCent     = decimal.NewFromFloat(0.01)
	fourPercent = decimal.NewFromFloat(0.04)
	one         = decimal.NewFromInt(1)
)

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// AnnuityPayment computes the level payment for a loan of principal at the
// given periodic rate over n periods. A zero rate degenerates to a
// straight-line split with no compounding.
func AnnuityPayment(principal, periodicRate decimal.Decimal, periods int) decimal.Decimal {
	n := decimal.NewFromInt(int64(periods))
	if periodicRate.IsZero() {
		return principal.Div(n)
	}
	compound := one.Add(periodicRate).Pow(n)
	return principal.Mul(periodicRate).Mul(compound).Div(compound.Sub(one))
}

// Amortize computes a fixed-payment amortization schedule. Each month's
// interest accrues on the remaining balance; the final row absorbs residual
// rounding so the balance lands on exactly zero and the principal portions
// sum to the original principal.
func Amortize(terms domain.LoanTerms) (*domain.AmortizationResult, error) {
	if terms.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewInvalidInput("principal", "loan amount must be greater than 0")
	}
	if terms.AnnualRatePercent.IsNegative() {
		return nil, domain.NewInvalidInput("annualRatePercent", "interest rate must not be negative")
	}
	if terms.TermMonths <= 0 {
		return nil, domain.NewInvalidInput("termMonths", "number of payments must be greater than 0")
	}

	monthlyRate := MonthlyRate(terms.AnnualRatePercent)
	payment := AnnuityPayment(terms.Principal, monthlyRate, terms.TermMonths)

	schedule := make([]domain.AmortizationRow, 0, terms.TermMonths)
	balance := terms.Principal
	totalInterest := decimal.Zero

	for month := 1; month <= terms.TermMonths; month++ {
		interest := balance.Mul(monthlyRate)
		principalPortion := payment.Sub(interest)
		rowPayment := payment

		if month == terms.TermMonths {
			// Final row clears whatever balance remains, absorbing
			// accumulated rounding drift.
			principalPortion = balance
			rowPayment = principalPortion.Add(interest)
		} else if principalPortion.GreaterThan(balance) {
			principalPortion = balance
			rowPayment = principalPortion.Add(interest)
		}

		balance = balance.Sub(principalPortion)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		if month == terms.TermMonths && balance.Abs().LessThanOrEqual(oneCent) {
			balance = decimal.Zero
		}

		totalInterest = totalInterest.Add(interest)
		schedule = append(schedule, domain.AmortizationRow{
			Month:            month,
			Payment:          rowPayment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			EndingBalance:    balance,
		})
	}

	totalPaid := terms.Principal.Add(totalInterest)
	return &domain.AmortizationResult{
		Payment:       payment,
		TotalPaid:     totalPaid,
		TotalInterest: totalInterest,
		Schedule:      schedule,
	}, nil
}
