package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()
	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Nil should restore the no-op logger")
}

func TestEngine_Run_Amortization(t *testing.T) {
	engine := NewEngine()
	report, err := engine.Run(&domain.Request{
		Name:       "car-loan",
		Calculator: domain.CalculatorAmortization,
		Loan: &domain.LoanTerms{
			Principal:         decimal.NewFromInt(40000),
			AnnualRatePercent: decimal.NewFromInt(5),
			TermMonths:        60,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "car-loan", report.Name)
	require.NotNil(t, report.Amortization)
	assert.Len(t, report.Amortization.Schedule, 60)
}

func TestEngine_Run_HomeEquity(t *testing.T) {
	engine := NewEngine()
	position := domain.EquitySnapshot{
		HomeValue:          decimal.NewFromInt(500000),
		MortgageBalance:    decimal.NewFromInt(200000),
		ProposedLoanAmount: decimal.NewFromInt(80000),
		MaxLTVPercent:      decimal.NewFromInt(80),
	}

	t.Run("analysis only", func(t *testing.T) {
		report, err := engine.Run(&domain.Request{
			Name:       "heloc-check",
			Calculator: domain.CalculatorHomeEquity,
			HomeEquity: &domain.HomeEquityRequest{EquitySnapshot: position},
		})
		require.NoError(t, err)
		require.NotNil(t, report.HomeEquity)
		assert.True(t, report.HomeEquity.Qualification.Qualified)
		assert.Nil(t, report.HomeEquity.LoanCost, "No pricing terms means no loan cost")
	})

	t.Run("priced when terms given", func(t *testing.T) {
		report, err := engine.Run(&domain.Request{
			Name:       "heloc-priced",
			Calculator: domain.CalculatorHomeEquity,
			HomeEquity: &domain.HomeEquityRequest{
				EquitySnapshot:    position,
				AnnualRatePercent: decimal.NewFromFloat(8.5),
				TermYears:         15,
			},
		})
		require.NoError(t, err)
		require.NotNil(t, report.HomeEquity)
		require.NotNil(t, report.HomeEquity.LoanCost, "Pricing terms should produce a loan cost")
		assert.True(t, report.HomeEquity.LoanCost.MonthlyPayment.IsPositive())
		assert.Len(t, report.HomeEquity.LoanCost.Schedule, 180)
	})
}

func TestEngine_Run_MissingBlock(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Run(&domain.Request{
		Name:       "broken",
		Calculator: domain.CalculatorRetirement,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retirement block")
}

func TestEngine_Run_UnknownCalculator(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Run(&domain.Request{Name: "x", Calculator: "mystery"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown calculator")
}

func TestEngine_Run_SoftValidationGatesProjection(t *testing.T) {
	engine := NewEngine()
	profile := baseProfile()
	profile.RetirementAge = profile.CurrentAge // invalid

	_, err := engine.Run(&domain.Request{
		Name:       "bad-retirement",
		Calculator: domain.CalculatorRetirement,
		Retirement: &profile,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retirement age must be greater than current age")
}

func TestEngine_Run_WarningsAttached(t *testing.T) {
	engine := NewEngine()
	profile := baseProfile()
	profile.EmployerMatchPercent = decimal.NewFromInt(200)

	report, err := engine.Run(&domain.Request{
		Name:       "generous-match",
		Calculator: domain.CalculatorRetirement,
		Retirement: &profile,
	})
	require.NoError(t, err, "Warnings must not gate calculation")
	assert.NotEmpty(t, report.Warnings)
	assert.NotNil(t, report.Retirement)
}

func TestEngine_RunDocument(t *testing.T) {
	engine := NewEngine()
	doc := &domain.Document{
		Title: "household review",
		Requests: []domain.Request{
			{
				Name:       "mortgage",
				Calculator: domain.CalculatorAmortization,
				Loan: &domain.LoanTerms{
					Principal:         decimal.NewFromInt(320000),
					AnnualRatePercent: decimal.NewFromFloat(6.5),
					TermMonths:        360,
				},
			},
			{
				Name:       "rmd-2024",
				Calculator: domain.CalculatorRMD,
				RMD: &domain.RMDProfile{
					BirthYear:      1951,
					RMDYear:        2024,
					AccountBalance: decimal.NewFromInt(100000),
				},
			},
		},
	}

	set, err := engine.RunDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "household review", set.Title)
	require.Len(t, set.Reports, 2)
	assert.NotNil(t, set.Reports[0].Amortization)
	assert.NotNil(t, set.Reports[1].RMD)
}

func TestEngine_RunDocument_AbortsOnFailure(t *testing.T) {
	engine := NewEngine()
	doc := &domain.Document{
		Requests: []domain.Request{
			{
				Name:       "bad-loan",
				Calculator: domain.CalculatorAmortization,
				Loan:       &domain.LoanTerms{TermMonths: 12},
			},
		},
	}

	_, err := engine.RunDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `request "bad-loan"`)
}
