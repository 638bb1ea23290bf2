package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per
// report, with the calculator's headline metrics).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ReportSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Calculator", "Headline", "Amount", "Secondary", "Detail"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range results.Reports {
		if err := w.Write(summaryRow(&results.Reports[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func summaryRow(r *domain.CalculationReport) []string {
	row := []string{r.Name, string(r.Calculator), "", "", "", ""}
	switch {
	case r.Amortization != nil:
		row[2] = "monthly_payment"
		row[3] = r.Amortization.Payment.StringFixed(2)
		row[4] = "total_interest"
		row[5] = r.Amortization.TotalInterest.StringFixed(2)
	case r.LoanCost != nil:
		row[2] = "monthly_payment"
		row[3] = r.LoanCost.MonthlyPayment.StringFixed(2)
		row[4] = "total_cost"
		row[5] = r.LoanCost.TotalCost.StringFixed(2)
	case r.AutoLoan != nil:
		row[2] = "monthly_payment"
		row[3] = r.AutoLoan.MonthlyPayment.StringFixed(2)
		row[4] = "amount_financed"
		row[5] = r.AutoLoan.AmountFinanced.StringFixed(2)
	case r.HomeEquity != nil:
		row[2] = "max_borrowable"
		row[3] = r.HomeEquity.Snapshot.MaxBorrowable.StringFixed(2)
		row[4] = "qualified"
		row[5] = boolString(r.HomeEquity.Qualification.Qualified)
	case r.Retirement != nil:
		row[2] = "total_at_retirement"
		row[3] = r.Retirement.TotalAtRetirement.StringFixed(2)
		row[4] = "shortfall"
		row[5] = r.Retirement.Shortfall.StringFixed(2)
	case r.RMD != nil:
		row[2] = "rmd_amount"
		row[3] = r.RMD.RMDAmount.StringFixed(2)
		row[4] = "distribution_period"
		row[5] = r.RMD.Divisor.Period.StringFixed(1)
	case r.Rent != nil:
		row[2] = "max_monthly_rent"
		row[3] = r.Rent.MaxMonthlyRent.StringFixed(2)
		row[4] = "conservative"
		row[5] = r.Rent.ConservativeMonthlyRent.StringFixed(2)
	case r.RentVsBuy != nil:
		row[2] = "crossover_year"
		row[3] = intToString(r.RentVsBuy.CrossoverYear)
		row[4] = "monthly_mortgage"
		row[5] = r.RentVsBuy.MonthlyMortgagePayment.StringFixed(2)
	}
	return row
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ScheduleCSV renders an amortization schedule as CSV, one row per month.
// Used by the CLI's amortize subcommand for spreadsheet export.
func ScheduleCSV(schedule []domain.AmortizationRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "Payment", "Principal", "Interest", "Balance"}); err != nil {
		return nil, err
	}
	for _, row := range schedule {
		record := []string{
			intToString(row.Month),
			round2(row.Payment),
			round2(row.PrincipalPortion),
			round2(row.InterestPortion),
			round2(row.EndingBalance),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func round2(d decimal.Decimal) string {
	return d.StringFixed(2)
}
