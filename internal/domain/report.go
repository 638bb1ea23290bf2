package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculator identifies which engine a request targets.
type Calculator string

const (
	CalculatorAmortization Calculator = "amortization"
	CalculatorLoanCost     Calculator = "loan_cost"
	CalculatorAutoLoan     Calculator = "auto_loan"
	CalculatorHomeEquity   Calculator = "home_equity"
	CalculatorRetirement   Calculator = "retirement"
	CalculatorRMD          Calculator = "rmd"
	CalculatorRent         Calculator = "rent"
	CalculatorRentVsBuy    Calculator = "rent_vs_buy"
)

// LoanCostRequest pairs loan terms with an optional fee set for the loan
// cost aggregator. TermYears is used instead of months to match how
// closing-cost loans are quoted.
type LoanCostRequest struct {
	Principal         decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TermYears         int             `json:"termYears" yaml:"term_years"`
	Fees              *FeeSet         `json:"fees,omitempty" yaml:"fees,omitempty"`
}

// HomeEquityRequest is the equity position with optional pricing terms for
// the proposed loan. A zero TermYears means analysis only: the request is
// qualified against the LTV policy but the loan itself is not priced.
type HomeEquityRequest struct {
	EquitySnapshot    `yaml:",inline"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TermYears         int             `json:"termYears" yaml:"term_years"`
	Fees              *FeeSet         `json:"fees,omitempty" yaml:"fees,omitempty"`
}

// Request is one named calculation in an input document. Exactly one of the
// input blocks must be populated, matching Calculator.
type Request struct {
	Name       string                  `json:"name" yaml:"name"`
	Calculator Calculator              `json:"calculator" yaml:"calculator"`
	Loan       *LoanTerms              `json:"loan,omitempty" yaml:"loan,omitempty"`
	LoanCost   *LoanCostRequest        `json:"loanCost,omitempty" yaml:"loan_cost,omitempty"`
	AutoLoan   *AutoLoanInput          `json:"autoLoan,omitempty" yaml:"auto_loan,omitempty"`
	HomeEquity *HomeEquityRequest      `json:"homeEquity,omitempty" yaml:"home_equity,omitempty"`
	Retirement *RetirementProfile      `json:"retirement,omitempty" yaml:"retirement,omitempty"`
	RMD        *RMDProfile             `json:"rmd,omitempty" yaml:"rmd,omitempty"`
	Rent       *RentAffordabilityInput `json:"rent,omitempty" yaml:"rent,omitempty"`
	RentVsBuy  *RentVsBuyInput         `json:"rentVsBuy,omitempty" yaml:"rent_vs_buy,omitempty"`
}

// Document is a parsed input file: a titled list of calculation requests.
type Document struct {
	Title    string    `json:"title" yaml:"title"`
	Requests []Request `json:"requests" yaml:"requests"`
}

// CalculationReport is the result of running a single request. Exactly one
// result block is populated, matching Calculator.
type CalculationReport struct {
	Name       string     `json:"name"`
	Calculator Calculator `json:"calculator"`
	Warnings   []string   `json:"warnings,omitempty"`

	Amortization *AmortizationResult   `json:"amortization,omitempty"`
	LoanCost     *LoanCostSummary      `json:"loanCost,omitempty"`
	AutoLoan     *AutoLoanResult       `json:"autoLoan,omitempty"`
	HomeEquity   *HomeEquityLoanResult `json:"homeEquity,omitempty"`
	Retirement   *RetirementResults    `json:"retirement,omitempty"`
	RMD          *RMDResults           `json:"rmd,omitempty"`
	Rent         *RentAffordability    `json:"rent,omitempty"`
	RentVsBuy    *RentVsBuyResult      `json:"rentVsBuy,omitempty"`
}

// ReportSet is the output of running a whole document.
type ReportSet struct {
	Title       string              `json:"title"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Reports     []CalculationReport `json:"reports"`
}
