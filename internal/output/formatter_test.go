package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/domain"
)

func sampleReportSet(t *testing.T) *domain.ReportSet {
	t.Helper()

	amort, err := calculation.Amortize(domain.LoanTerms{
		Principal:         decimal.NewFromInt(250000),
		AnnualRatePercent: decimal.NewFromFloat(6.5),
		TermMonths:        360,
	})
	require.NoError(t, err, "Sample amortization should succeed")

	rent, err := calculation.CalculateRentAffordability(domain.RentAffordabilityInput{
		AnnualIncome: decimal.NewFromInt(72000),
		MonthlyDebt:  decimal.NewFromInt(400),
	})
	require.NoError(t, err, "Sample rent affordability should succeed")

	return &domain.ReportSet{
		Title:       "Household Review",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Reports: []domain.CalculationReport{
			{
				Name:         "mortgage",
				Calculator:   domain.CalculatorAmortization,
				Amortization: amort,
			},
			{
				Name:       "apartment-budget",
				Calculator: domain.CalculatorRent,
				Rent:       rent,
				Warnings:   []string{"guideline defaulted to 30%"},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv", "pdf"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "Formatter %q should be registered", name)
		assert.Equal(t, name, f.Name(), "Formatter should report its registered name")
	}

	assert.Nil(t, GetFormatterByName("html"), "Unknown format should return nil")
	assert.Nil(t, GetFormatterByName(""), "Empty format should return nil")
}

func TestFormatterNames(t *testing.T) {
	names := FormatterNames()
	assert.Len(t, names, 4, "Should list every registered formatter")
	assert.Contains(t, names, "console", "Should include console")
	assert.Contains(t, names, "pdf", "Should include pdf")
}

func TestConsoleFormatter(t *testing.T) {
	set := sampleReportSet(t)

	out, err := ConsoleFormatter{}.Format(set)
	require.NoError(t, err, "Console format should not error")

	text := string(out)
	assert.Contains(t, text, "Household Review", "Should print the document title")
	assert.Contains(t, text, "mortgage (amortization)", "Should print the report header")
	assert.Contains(t, text, "Monthly Payment:", "Should print the payment line")
	assert.Contains(t, text, "warning: guideline defaulted to 30%", "Should surface warnings")
	assert.Contains(t, text, "...", "Long schedules should be elided in the middle")
}

func TestConsoleFormatter_ShortScheduleNotElided(t *testing.T) {
	amort, err := calculation.Amortize(domain.LoanTerms{
		Principal:         decimal.NewFromInt(1200),
		AnnualRatePercent: decimal.Zero,
		TermMonths:        4,
	})
	require.NoError(t, err)

	set := &domain.ReportSet{Reports: []domain.CalculationReport{{
		Name:         "short",
		Calculator:   domain.CalculatorAmortization,
		Amortization: amort,
	}}}

	out, err := ConsoleFormatter{}.Format(set)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "...", "Four-row schedules should print in full")
}

func TestJSONFormatter(t *testing.T) {
	set := sampleReportSet(t)

	out, err := JSONFormatter{}.Format(set)
	require.NoError(t, err, "JSON format should not error")

	var decoded domain.ReportSet
	require.NoError(t, json.Unmarshal(out, &decoded), "Output should be valid JSON")
	assert.Equal(t, "Household Review", decoded.Title, "Title should round-trip")
	require.Len(t, decoded.Reports, 2, "Both reports should round-trip")
	assert.Equal(t, "mortgage", decoded.Reports[0].Name, "Report names should round-trip")
}

func TestCSVSummarizer(t *testing.T) {
	set := sampleReportSet(t)

	out, err := CSVSummarizer{}.Format(set)
	require.NoError(t, err, "CSV format should not error")

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "Should have a header plus one row per report")
	assert.Equal(t, "Name,Calculator,Headline,Amount,Secondary,Detail", lines[0], "Header should be stable")
	assert.Contains(t, lines[1], "mortgage,amortization,monthly_payment", "Amortization row should carry the payment headline")
	assert.Contains(t, lines[2], "apartment-budget,rent,max_monthly_rent,1800.00", "Rent row should carry the guideline rent")
}

func TestScheduleCSV(t *testing.T) {
	amort, err := calculation.Amortize(domain.LoanTerms{
		Principal:         decimal.NewFromInt(12000),
		AnnualRatePercent: decimal.NewFromInt(5),
		TermMonths:        24,
	})
	require.NoError(t, err)

	out, err := ScheduleCSV(amort.Schedule)
	require.NoError(t, err, "Schedule CSV should not error")

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 25, "Should have a header plus one row per month")
	assert.Equal(t, "Month,Payment,Principal,Interest,Balance", lines[0], "Header should be stable")
	assert.True(t, strings.HasPrefix(lines[1], "1,"), "First data row should be month 1")
	assert.True(t, strings.HasSuffix(lines[24], ",0.00"), "Final balance should be zero")
}

func TestPDFFormatter(t *testing.T) {
	set := sampleReportSet(t)

	out, err := PDFFormatter{}.Format(set)
	require.NoError(t, err, "PDF format should not error")
	assert.True(t, len(out) > 1000, "PDF output should be non-trivial")
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "Output should start with the PDF magic header")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)), "Currency should show two decimals")
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero), "Zero should format cleanly")
	assert.Equal(t, "6.50%", FormatPercentage(decimal.NewFromFloat(6.5)), "Percentage should show two decimals")
}
