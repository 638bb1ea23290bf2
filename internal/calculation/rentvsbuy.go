package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

// CompareRentVsBuy projects the cumulative cost of renting against buying
// the same home over the comparison window. The buy side finances the
// price net of down payment with a fixed-rate mortgage, carries property
// tax, insurance and maintenance, and credits home equity (appreciated
// value minus remaining mortgage balance) against outlays.
func CompareRentVsBuy(in domain.RentVsBuyInput) (*domain.RentVsBuyResult, error) {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewInvalidInput("homePrice", "home price must be greater than 0")
	}
	if in.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewInvalidInput("monthlyRent", "monthly rent must be greater than 0")
	}
	if in.DownPayment.IsNegative() || in.DownPayment.GreaterThanOrEqual(in.HomePrice) {
		return nil, domain.NewInvalidInput("downPayment", "down payment must be between 0 and the home price")
	}
	if in.ComparisonYears <= 0 {
		return nil, domain.NewInvalidInput("comparisonYears", "comparison window must be greater than 0")
	}
	if in.MortgageTermYears <= 0 {
		return nil, domain.NewInvalidInput("mortgageTermYears", "mortgage term must be greater than 0")
	}

	financed := in.HomePrice.Sub(in.DownPayment)
	amort, err := Amortize(domain.LoanTerms{
		Principal:         financed,
		AnnualRatePercent: in.MortgageRatePercent,
		TermMonths:        in.MortgageTermYears * monthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	rentGrowth := one.Add(in.RentGrowthPercent.Div(hundred))
	appreciation := one.Add(in.AppreciationPercent.Div(hundred))

	years := make([]domain.RentVsBuyYear, 0, in.ComparisonYears)
	annualRent := in.MonthlyRent.Mul(twelve)
	cumulativeRent := decimal.Zero
	cumulativeOutlay := in.DownPayment
	homeValue := in.HomePrice
	crossover := 0

	for y := 1; y <= in.ComparisonYears; y++ {
		cumulativeRent = cumulativeRent.Add(annualRent)

		carrying := homeValue.Mul(in.PropertyTaxPercent.Add(in.MaintenancePercent)).Div(hundred).
			Add(in.AnnualInsurance)
		cumulativeOutlay = cumulativeOutlay.Add(mortgagePaidInYear(amort, y)).Add(carrying)

		homeValue = homeValue.Mul(appreciation)
		equity := homeValue.Sub(remainingBalanceAfterYear(amort, y, financed))
		netCost := cumulativeOutlay.Sub(equity)

		years = append(years, domain.RentVsBuyYear{
			Year:           y,
			RentCost:       annualRent,
			CumulativeRent: cumulativeRent,
			BuyOutlay:      cumulativeOutlay,
			HomeEquity:     equity,
			BuyNetCost:     netCost,
		})

		if crossover == 0 && netCost.LessThan(cumulativeRent) {
			crossover = y
		}

		annualRent = annualRent.Mul(rentGrowth)
	}

	last := years[len(years)-1]
	return &domain.RentVsBuyResult{
		MonthlyMortgagePayment: amort.Payment,
		CrossoverYear:          crossover,
		BuyingIsCheaper:        last.BuyNetCost.LessThan(last.CumulativeRent),
		Years:                  years,
	}, nil
}

// mortgagePaidInYear sums the payments actually due in calendar year y of
// the loan; zero once the mortgage is paid off.
func mortgagePaidInYear(amort *domain.AmortizationResult, y int) decimal.Decimal {
	total := decimal.Zero
	start := (y - 1) * monthsPerYear
	for m := start; m < start+monthsPerYear && m < len(amort.Schedule); m++ {
		total = total.Add(amort.Schedule[m].Payment)
	}
	return total
}

// remainingBalanceAfterYear reads the mortgage balance at the end of year y.
func remainingBalanceAfterYear(amort *domain.AmortizationResult, y int, financed decimal.Decimal) decimal.Decimal {
	idx := y*monthsPerYear - 1
	if idx >= len(amort.Schedule) {
		return decimal.Zero
	}
	if idx < 0 {
		return financed
	}
	return amort.Schedule[idx].EndingBalance
}
