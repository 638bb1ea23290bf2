package domain

import "github.com/shopspring/decimal"

// EquitySnapshot captures the home-equity position for a proposed loan.
// MortgageBalance may exceed HomeValue; negative equity is a valid,
// representable state. Ratios against a non-positive home value are defined
// as zero by convention rather than treated as errors.
type EquitySnapshot struct {
	HomeValue          decimal.Decimal `json:"homeValue" yaml:"home_value"`
	MortgageBalance    decimal.Decimal `json:"mortgageBalance" yaml:"mortgage_balance"`
	ProposedLoanAmount decimal.Decimal `json:"proposedLoanAmount" yaml:"proposed_loan_amount"`
	MaxLTVPercent      decimal.Decimal `json:"maxLtvPercent" yaml:"max_ltv_percent"`

	AvailableEquity decimal.Decimal `json:"availableEquity"`
	CurrentLTV      decimal.Decimal `json:"currentLtv"`
	CLTVAfterLoan   decimal.Decimal `json:"cltvAfterLoan"`
	MaxBorrowable   decimal.Decimal `json:"maxBorrowable"`
}

// QualificationResult reports whether a proposed home-equity loan passes the
// lender's LTV policy. Reason is empty when Qualified is true.
type QualificationResult struct {
	Qualified bool   `json:"qualified"`
	Reason    string `json:"reason"`
}

// HomeEquityLoanResult couples the equity analysis with the loan cost of the
// proposed amount when the borrower qualifies.
type HomeEquityLoanResult struct {
	Snapshot      EquitySnapshot      `json:"snapshot"`
	Qualification QualificationResult `json:"qualification"`
	LoanCost      *LoanCostSummary    `json:"loanCost,omitempty"`
}
