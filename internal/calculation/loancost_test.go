package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func TestResolveFees_Additivity(t *testing.T) {
	principal := decimal.NewFromInt(100000)

	tests := []struct {
		name     string
		fees     domain.FeeSet
		expected float64
	}{
		{
			"percentage origination",
			domain.FeeSet{
				OriginationFee:     decimal.NewFromInt(2),
				OriginationFeeType: domain.OriginationFeePercentage,
				DocumentationFee:   decimal.NewFromInt(150),
				OtherFees:          decimal.NewFromInt(75),
			},
			2000 + 150 + 75,
		},
		{
			"flat origination",
			domain.FeeSet{
				OriginationFee:     decimal.NewFromInt(500),
				OriginationFeeType: domain.OriginationFeeFlat,
				DocumentationFee:   decimal.NewFromInt(150),
				OtherFees:          decimal.NewFromInt(75),
			},
			500 + 150 + 75,
		},
		{
			"untyped defaults to percentage",
			domain.FeeSet{
				OriginationFee: decimal.NewFromInt(1),
			},
			1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ResolveFees(principal, &tt.fees)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, total.InexactFloat64(), 1e-9,
				"Total fees should be the sum of the resolved components")
		})
	}
}

func TestResolveFees_NilFeeSet(t *testing.T) {
	total, err := ResolveFees(decimal.NewFromInt(50000), nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "No fee set means no fees")
}

func TestResolveFees_NegativeFeesRejected(t *testing.T) {
	tests := []struct {
		name string
		fees domain.FeeSet
	}{
		{"negative origination", domain.FeeSet{OriginationFee: decimal.NewFromInt(-1)}},
		{"negative documentation", domain.FeeSet{DocumentationFee: decimal.NewFromInt(-1)}},
		{"negative other", domain.FeeSet{OtherFees: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveFees(decimal.NewFromInt(50000), &tt.fees)
			var invalid *domain.InvalidInputError
			assert.ErrorAs(t, err, &invalid, "Negative fees should be rejected")
		})
	}
}

func TestCalculateLoanCost_Totals(t *testing.T) {
	fees := &domain.FeeSet{
		OriginationFee:     decimal.NewFromInt(2),
		OriginationFeeType: domain.OriginationFeePercentage,
		DocumentationFee:   decimal.NewFromInt(200),
	}
	summary, err := CalculateLoanCost(decimal.NewFromInt(100000), decimal.NewFromFloat(7.5), 10, fees)
	require.NoError(t, err)

	expectedCost := summary.Principal.Add(summary.TotalInterest).Add(summary.TotalFees)
	assert.True(t, summary.TotalCost.Equal(expectedCost), "Total cost should be principal+interest+fees")
	assert.InDelta(t, 2200, summary.TotalFees.InexactFloat64(), 1e-9, "Should resolve fees against principal")
	assert.Len(t, summary.Schedule, 120, "Ten-year loan should amortize over 120 months")

	expectedEffective := summary.TotalInterest.Div(summary.Principal).Mul(decimal.NewFromInt(100))
	assert.True(t, summary.EffectiveInterestRate.Equal(expectedEffective),
		"Effective rate should be interest over principal")
}

func TestCalculateLoanCost_APRIncreasesWithOriginationFee(t *testing.T) {
	principal := decimal.NewFromInt(250000)
	rate := decimal.NewFromFloat(8.0)

	previous := decimal.NewFromInt(-1)
	for _, pct := range []int64{0, 1, 2, 3, 5} {
		fees := &domain.FeeSet{
			OriginationFee:     decimal.NewFromInt(pct),
			OriginationFeeType: domain.OriginationFeePercentage,
		}
		summary, err := CalculateLoanCost(principal, rate, 5, fees)
		require.NoError(t, err)
		assert.True(t, summary.ApproximateAPR.GreaterThan(previous),
			"APR should strictly increase with the origination fee (%d%%)", pct)
		previous = summary.ApproximateAPR
	}
}

func TestCalculateLoanCost_InvalidTerm(t *testing.T) {
	_, err := CalculateLoanCost(decimal.NewFromInt(10000), decimal.NewFromInt(5), 0, nil)
	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "termYears", invalid.Field)
}

func TestCalculateAutoLoan_TradeInScenario(t *testing.T) {
	// 50000 price minus 10000 trade-in, tax and fees paid out of pocket.
	result, err := CalculateAutoLoan(domain.AutoLoanInput{
		VehiclePrice:      decimal.NewFromInt(50000),
		TradeInValue:      decimal.NewFromInt(10000),
		AnnualRatePercent: decimal.NewFromInt(5),
		TermMonths:        60,
	})
	require.NoError(t, err)

	assert.True(t, result.AmountFinanced.Equal(decimal.NewFromInt(40000)),
		"Should finance price minus trade-in")
	assert.InDelta(t, 754.85, result.MonthlyPayment.InexactFloat64(), 0.01,
		"Should match the standard annuity payment")
}

func TestCalculateAutoLoan_FinancedTaxAndFees(t *testing.T) {
	in := domain.AutoLoanInput{
		VehiclePrice:      decimal.NewFromInt(30000),
		TradeInValue:      decimal.NewFromInt(5000),
		DownPayment:       decimal.NewFromInt(2000),
		SalesTaxPercent:   decimal.NewFromInt(6),
		DealerFees:        decimal.NewFromInt(400),
		AnnualRatePercent: decimal.NewFromFloat(6.9),
		TermMonths:        72,
	}

	outOfPocket, err := CalculateAutoLoan(in)
	require.NoError(t, err)

	in.FinanceTaxAndFees = true
	rolledIn, err := CalculateAutoLoan(in)
	require.NoError(t, err)

	// Tax on 25000 at 6% plus 400 in fees.
	assert.InDelta(t, 1900, rolledIn.AmountFinanced.Sub(outOfPocket.AmountFinanced).InexactFloat64(), 1e-9,
		"Financing extras should grow the principal by tax plus fees")
	assert.True(t, rolledIn.MonthlyPayment.GreaterThan(outOfPocket.MonthlyPayment),
		"Rolling extras into the loan should raise the payment")
	assert.True(t, outOfPocket.UpfrontCosts.GreaterThan(rolledIn.UpfrontCosts),
		"Paying extras upfront should raise the out-of-pocket amount")
}

func TestCalculateAutoLoan_NothingToFinance(t *testing.T) {
	_, err := CalculateAutoLoan(domain.AutoLoanInput{
		VehiclePrice:      decimal.NewFromInt(20000),
		TradeInValue:      decimal.NewFromInt(25000),
		AnnualRatePercent: decimal.NewFromInt(5),
		TermMonths:        36,
	})
	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid, "Trade-in above price should leave nothing to finance")
}
