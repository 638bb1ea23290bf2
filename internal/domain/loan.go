package domain

import "github.com/shopspring/decimal"

// LoanTerms describes a fixed-payment loan to be amortized. The struct is
// consumed once per calculation and never mutated.
type LoanTerms struct {
	Principal         decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TermMonths        int             `json:"termMonths" yaml:"term_months"`
}

// AmortizationRow is a single month of an amortization schedule.
// PrincipalPortion + InterestPortion equals Payment, and EndingBalance is
// non-increasing across rows, reaching exactly zero on the final row.
type AmortizationRow struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// AmortizationResult is the output of the amortization engine.
type AmortizationResult struct {
	Payment       decimal.Decimal   `json:"payment"`
	TotalPaid     decimal.Decimal   `json:"totalPaid"`
	TotalInterest decimal.Decimal   `json:"totalInterest"`
	Schedule      []AmortizationRow `json:"schedule"`
}

// FinalBalance returns the ending balance of the last schedule row, or zero
// for an empty schedule.
func (r *AmortizationResult) FinalBalance() decimal.Decimal {
	if len(r.Schedule) == 0 {
		return decimal.Zero
	}
	return r.Schedule[len(r.Schedule)-1].EndingBalance
}

// OriginationFeeType tags how an origination fee is expressed.
type OriginationFeeType string

const (
	// OriginationFeePercentage expresses the fee as a percentage of principal.
	OriginationFeePercentage OriginationFeeType = "percentage"
	// OriginationFeeFlat expresses the fee as a flat dollar amount.
	OriginationFeeFlat OriginationFeeType = "flat"
)

// FeeSet holds closing costs charged on top of a loan. The origination fee
// is a tagged variant: percentage of principal or flat amount, never both.
// An empty Type defaults to percentage.
type FeeSet struct {
	OriginationFee     decimal.Decimal    `json:"originationFee" yaml:"origination_fee"`
	OriginationFeeType OriginationFeeType `json:"originationFeeType" yaml:"origination_fee_type"`
	DocumentationFee   decimal.Decimal    `json:"documentationFee" yaml:"documentation_fee"`
	OtherFees          decimal.Decimal    `json:"otherFees" yaml:"other_fees"`
}

// LoanCostSummary aggregates the full cost of borrowing for a loan with
// closing costs. ApproximateAPR is a linear cost-of-borrowing metric, not a
// Reg-Z compliant APR disclosure.
type LoanCostSummary struct {
	Principal             decimal.Decimal   `json:"principal"`
	MonthlyPayment        decimal.Decimal   `json:"monthlyPayment"`
	TotalPayments         decimal.Decimal   `json:"totalPayments"`
	TotalInterest         decimal.Decimal   `json:"totalInterest"`
	TotalFees             decimal.Decimal   `json:"totalFees"`
	TotalCost             decimal.Decimal   `json:"totalCost"`
	ApproximateAPR        decimal.Decimal   `json:"approximateApr"`
	EffectiveInterestRate decimal.Decimal   `json:"effectiveInterestRate"`
	Schedule              []AmortizationRow `json:"schedule"`
}

// AutoLoanInput describes an auto purchase to be financed. Sales tax and
// dealer fees are rolled into the financed amount when FinanceTaxAndFees is
// set; otherwise they are paid out of pocket and excluded from the loan.
type AutoLoanInput struct {
	VehiclePrice      decimal.Decimal `json:"vehiclePrice" yaml:"vehicle_price"`
	TradeInValue      decimal.Decimal `json:"tradeInValue" yaml:"trade_in_value"`
	DownPayment       decimal.Decimal `json:"downPayment" yaml:"down_payment"`
	SalesTaxPercent   decimal.Decimal `json:"salesTaxPercent" yaml:"sales_tax_percent"`
	DealerFees        decimal.Decimal `json:"dealerFees" yaml:"dealer_fees"`
	FinanceTaxAndFees bool            `json:"financeTaxAndFees" yaml:"finance_tax_and_fees"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annual_rate_percent"`
	TermMonths        int             `json:"termMonths" yaml:"term_months"`
}

// AutoLoanResult is the outcome of financing an auto purchase.
type AutoLoanResult struct {
	AmountFinanced decimal.Decimal    `json:"amountFinanced"`
	SalesTaxAmount decimal.Decimal    `json:"salesTaxAmount"`
	UpfrontCosts   decimal.Decimal    `json:"upfrontCosts"`
	MonthlyPayment decimal.Decimal    `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal    `json:"totalInterest"`
	TotalCost      decimal.Decimal    `json:"totalCost"`
	Amortization   AmortizationResult `json:"amortization"`
}
