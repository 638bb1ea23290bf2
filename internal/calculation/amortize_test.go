package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func terms(principal float64, rate float64, months int) domain.LoanTerms {
	return domain.LoanTerms{
		Principal:         decimal.NewFromFloat(principal),
		AnnualRatePercent: decimal.NewFromFloat(rate),
		TermMonths:        months,
	}
}

func TestAmortize_StandardLoan(t *testing.T) {
	result, err := Amortize(terms(40000, 5, 60))
	require.NoError(t, err)

	assert.InDelta(t, 754.85, result.Payment.InexactFloat64(), 0.01, "Should match the standard annuity payment")
	assert.Len(t, result.Schedule, 60, "Should produce one row per month")
}

func TestAmortize_PrincipalCompleteness(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		months    int
	}{
		{"five year auto loan", 40000, 5.0, 60},
		{"thirty year mortgage", 320000, 6.5, 360},
		{"short personal loan", 5000, 12.0, 24},
		{"high rate", 15000, 29.99, 36},
		{"one payment", 1000, 7.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Amortize(terms(tt.principal, tt.rate, tt.months))
			require.NoError(t, err)

			sumPrincipal := decimal.Zero
			for _, row := range result.Schedule {
				sumPrincipal = sumPrincipal.Add(row.PrincipalPortion)
			}
			assert.InDelta(t, tt.principal, sumPrincipal.InexactFloat64(), 0.01,
				"Principal portions should sum to the original principal")
			assert.True(t, result.FinalBalance().IsZero(), "Final balance should be exactly zero")
		})
	}
}

func TestAmortize_ZeroRateDegeneracy(t *testing.T) {
	principal := decimal.NewFromInt(1200)
	result, err := Amortize(domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: decimal.Zero,
		TermMonths:        12,
	})
	require.NoError(t, err)

	expected := principal.Div(decimal.NewFromInt(12))
	assert.True(t, result.Payment.Equal(expected), "Zero rate should give exactly principal/n")
	assert.True(t, result.TotalInterest.IsZero(), "Zero rate should accrue no interest")
}

func TestAmortize_MonotonicBalance(t *testing.T) {
	result, err := Amortize(terms(250000, 7.25, 360))
	require.NoError(t, err)

	previous := decimal.NewFromInt(250000)
	for _, row := range result.Schedule {
		assert.True(t, row.EndingBalance.LessThanOrEqual(previous),
			"Balance should never increase (month %d)", row.Month)
		assert.False(t, row.EndingBalance.IsNegative(),
			"Balance should never go negative (month %d)", row.Month)
		previous = row.EndingBalance
	}
}

func TestAmortize_RowPaymentSplit(t *testing.T) {
	result, err := Amortize(terms(10000, 8, 48))
	require.NoError(t, err)

	for _, row := range result.Schedule {
		split := row.PrincipalPortion.Add(row.InterestPortion)
		assert.InDelta(t, row.Payment.InexactFloat64(), split.InexactFloat64(), 1e-9,
			"Principal+interest should equal the payment (month %d)", row.Month)
	}
}

func TestAmortize_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.LoanTerms
		field string
	}{
		{"zero principal", terms(0, 5, 60), "principal"},
		{"negative principal", terms(-1000, 5, 60), "principal"},
		{"negative rate", terms(1000, -1, 60), "annualRatePercent"},
		{"zero term", terms(1000, 5, 0), "termMonths"},
		{"negative term", terms(1000, 5, -12), "termMonths"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Amortize(tt.terms)
			assert.Nil(t, result, "Should not return a result")

			var invalid *domain.InvalidInputError
			require.ErrorAs(t, err, &invalid, "Should be an InvalidInputError")
			assert.Equal(t, tt.field, invalid.Field, "Should identify the offending field")
		})
	}
}

func TestAmortize_Idempotence(t *testing.T) {
	first, err := Amortize(terms(75000, 9.5, 120))
	require.NoError(t, err)
	second, err := Amortize(terms(75000, 9.5, 120))
	require.NoError(t, err)

	assert.Equal(t, first, second, "Identical inputs should give identical outputs")
}

func TestAnnuityPayment_ZeroPeriods(t *testing.T) {
	// Guarded by Amortize's validation; the helper itself assumes periods > 0.
	payment := AnnuityPayment(decimal.NewFromInt(1000), decimal.Zero, 4)
	assert.True(t, payment.Equal(decimal.NewFromInt(250)), "Straight-line split")
}
