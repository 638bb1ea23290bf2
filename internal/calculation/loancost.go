package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

// ResolveFees turns a FeeSet into a total dollar amount against the given
// principal. An origination fee with an empty type is treated as a
// percentage of principal.
func ResolveFees(principal decimal.Decimal, fees *domain.FeeSet) (decimal.Decimal, error) {
	if fees == nil {
		return decimal.Zero, nil
	}
	if fees.OriginationFee.IsNegative() {
		return decimal.Zero, domain.NewInvalidInput("originationFee", "fee must not be negative")
	}
	if fees.DocumentationFee.IsNegative() {
		return decimal.Zero, domain.NewInvalidInput("documentationFee", "fee must not be negative")
	}
	if fees.OtherFees.IsNegative() {
		return decimal.Zero, domain.NewInvalidInput("otherFees", "fee must not be negative")
	}

	origination := fees.OriginationFee
	switch fees.OriginationFeeType {
	case domain.OriginationFeeFlat:
		// Used as-is.
	case domain.OriginationFeePercentage, "":
		origination = principal.Mul(fees.OriginationFee).Div(hundred)
	default:
		return decimal.Zero, domain.NewInvalidInput("originationFeeType", "must be \"percentage\" or \"flat\"")
	}

	return origination.Add(fees.DocumentationFee).Add(fees.OtherFees), nil
}

// CalculateLoanCost wraps the amortization engine with closing costs and
// aggregate cost-of-borrowing metrics. ApproximateAPR is the linear
// approximation (interest+fees)/principal/years, not an iterative true-APR
// solve; it must not be presented as a regulatory disclosure.
func CalculateLoanCost(principal, annualRatePercent decimal.Decimal, termYears int, fees *domain.FeeSet) (*domain.LoanCostSummary, error) {
	if termYears <= 0 {
		return nil, domain.NewInvalidInput("termYears", "loan term must be greater than 0")
	}

	totalFees, err := ResolveFees(principal, fees)
	if err != nil {
		return nil, err
	}

	amort, err := Amortize(domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termYears * monthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	years := decimal.NewFromInt(int64(termYears))
	apr := amort.TotalInterest.Add(totalFees).Div(principal).Div(years).Mul(hundred)
	effectiveRate := amort.TotalInterest.Div(principal).Mul(hundred)

	return &domain.LoanCostSummary{
		Principal:             principal,
		MonthlyPayment:        amort.Payment,
		TotalPayments:         amort.TotalPaid,
		TotalInterest:         amort.TotalInterest,
		TotalFees:             totalFees,
		TotalCost:             principal.Add(amort.TotalInterest).Add(totalFees),
		ApproximateAPR:        apr,
		EffectiveInterestRate: effectiveRate,
		Schedule:              amort.Schedule,
	}, nil
}

// CalculateAutoLoan resolves the amount financed for a vehicle purchase and
// amortizes it directly. Auto-loan taxes and dealer fees are rolled into the
// financed principal when requested, never charged as closing costs, so this
// bypasses the fee aggregator.
func CalculateAutoLoan(in domain.AutoLoanInput) (*domain.AutoLoanResult, error) {
	if in.VehiclePrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewInvalidInput("vehiclePrice", "vehicle price must be greater than 0")
	}
	if in.TradeInValue.IsNegative() {
		return nil, domain.NewInvalidInput("tradeInValue", "trade-in value must not be negative")
	}
	if in.DownPayment.IsNegative() {
		return nil, domain.NewInvalidInput("downPayment", "down payment must not be negative")
	}
	if in.SalesTaxPercent.IsNegative() {
		return nil, domain.NewInvalidInput("salesTaxPercent", "sales tax must not be negative")
	}
	if in.DealerFees.IsNegative() {
		return nil, domain.NewInvalidInput("dealerFees", "dealer fees must not be negative")
	}

	priceAfterTrade := in.VehiclePrice.Sub(in.TradeInValue)
	salesTax := priceAfterTrade.Mul(in.SalesTaxPercent).Div(hundred)

	amountFinanced := priceAfterTrade.Sub(in.DownPayment)
	upfront := in.DownPayment
	if in.FinanceTaxAndFees {
		amountFinanced = amountFinanced.Add(salesTax).Add(in.DealerFees)
	} else {
		upfront = upfront.Add(salesTax).Add(in.DealerFees)
	}
	if amountFinanced.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewInvalidInput("amountFinanced", "nothing left to finance after trade-in and down payment")
	}

	amort, err := Amortize(domain.LoanTerms{
		Principal:         amountFinanced,
		AnnualRatePercent: in.AnnualRatePercent,
		TermMonths:        in.TermMonths,
	})
	if err != nil {
		return nil, err
	}

	return &domain.AutoLoanResult{
		AmountFinanced: amountFinanced,
		SalesTaxAmount: salesTax,
		UpfrontCosts:   upfront,
		MonthlyPayment: amort.Payment,
		TotalInterest:  amort.TotalInterest,
		TotalCost:      amort.TotalPaid.Add(upfront),
		Amortization:   *amort,
	}, nil
}
