package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

// AnalyzeEquity fills in the derived ratios for a home-equity position.
// A non-positive home value is a degenerate input: every ratio is defined
// as zero rather than treated as an error, and nothing is borrowable.
func AnalyzeEquity(homeValue, mortgageBalance, proposedLoan, maxLTVPercent decimal.Decimal) domain.EquitySnapshot {
	snap := domain.EquitySnapshot{
		HomeValue:          homeValue,
		MortgageBalance:    mortgageBalance,
		ProposedLoanAmount: proposedLoan,
		MaxLTVPercent:      maxLTVPercent,
		AvailableEquity:    homeValue.Sub(mortgageBalance),
	}

	if homeValue.LessThanOrEqual(decimal.Zero) {
		snap.CurrentLTV = decimal.Zero
		snap.CLTVAfterLoan = decimal.Zero
		snap.MaxBorrowable = decimal.Zero
		return snap
	}

	snap.CurrentLTV = mortgageBalance.Div(homeValue).Mul(hundred)
	snap.CLTVAfterLoan = mortgageBalance.Add(proposedLoan).Div(homeValue).Mul(hundred)

	maxBorrowable := homeValue.Mul(maxLTVPercent).Div(hundred).Sub(mortgageBalance)
	if maxBorrowable.IsNegative() {
		maxBorrowable = decimal.Zero
	}
	snap.MaxBorrowable = maxBorrowable
	return snap
}

// CheckQualification applies the lender's LTV policy to a snapshot. Rules
// run in order; the first failing rule wins.
func CheckQualification(snap domain.EquitySnapshot) domain.QualificationResult {
	switch {
	case snap.CurrentLTV.GreaterThan(snap.MaxLTVPercent):
		return domain.QualificationResult{Reason: "current LTV exceeds max"}
	case snap.ProposedLoanAmount.GreaterThan(snap.MaxBorrowable):
		return domain.QualificationResult{Reason: "requested amount exceeds max borrowable"}
	case snap.CLTVAfterLoan.GreaterThan(snap.MaxLTVPercent):
		return domain.QualificationResult{Reason: "resulting CLTV exceeds limit"}
	default:
		return domain.QualificationResult{Qualified: true}
	}
}

// CalculateHomeEquityLoan analyzes the equity position and, when the
// borrower qualifies, prices the proposed loan with the cost aggregator.
func CalculateHomeEquityLoan(snap domain.EquitySnapshot, annualRatePercent decimal.Decimal, termYears int, fees *domain.FeeSet) (*domain.HomeEquityLoanResult, error) {
	analyzed := AnalyzeEquity(snap.HomeValue, snap.MortgageBalance, snap.ProposedLoanAmount, snap.MaxLTVPercent)
	qual := CheckQualification(analyzed)

	result := &domain.HomeEquityLoanResult{
		Snapshot:      analyzed,
		Qualification: qual,
	}
	if !qual.Qualified {
		return result, nil
	}

	cost, err := CalculateLoanCost(analyzed.ProposedLoanAmount, annualRatePercent, termYears, fees)
	if err != nil {
		return nil, err
	}
	result.LoanCost = cost
	return result, nil
}
