package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/fincalc/fincalc/internal/domain"
)

// PDFFormatter renders the report set as a printable PDF, one section per
// report with a summary block and, where applicable, a compact table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ReportSet) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	title := results.Title
	if title == "" {
		title = "Personal Finance Calculations"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+results.GeneratedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i := range results.Reports {
		writePDFReport(pdf, &results.Reports[i])
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFReport(pdf *fpdf.Fpdf, r *domain.CalculationReport) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s (%s)", r.Name, r.Calculator), "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	for _, w := range r.Warnings {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, "Warning: "+w, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range pdfSummaryLines(r) {
		pdfKeyValue(pdf, line[0], line[1])
	}

	if r.Retirement != nil {
		writePDFProjectionTable(pdf, r.Retirement)
	}
	pdf.Ln(5)
}

func pdfKeyValue(pdf *fpdf.Fpdf, key, value string) {
	pdf.CellFormat(70, 6, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "R", false, 0, "")
}

// pdfSummaryLines flattens a report's headline numbers into key/value pairs.
func pdfSummaryLines(r *domain.CalculationReport) [][2]string {
	switch {
	case r.Amortization != nil:
		return [][2]string{
			{"Monthly Payment", FormatCurrency(r.Amortization.Payment)},
			{"Total Paid", FormatCurrency(r.Amortization.TotalPaid)},
			{"Total Interest", FormatCurrency(r.Amortization.TotalInterest)},
		}
	case r.LoanCost != nil:
		return [][2]string{
			{"Monthly Payment", FormatCurrency(r.LoanCost.MonthlyPayment)},
			{"Total Interest", FormatCurrency(r.LoanCost.TotalInterest)},
			{"Total Fees", FormatCurrency(r.LoanCost.TotalFees)},
			{"Total Cost", FormatCurrency(r.LoanCost.TotalCost)},
			{"Approximate APR (non-regulatory)", FormatPercentage(r.LoanCost.ApproximateAPR)},
		}
	case r.AutoLoan != nil:
		return [][2]string{
			{"Amount Financed", FormatCurrency(r.AutoLoan.AmountFinanced)},
			{"Monthly Payment", FormatCurrency(r.AutoLoan.MonthlyPayment)},
			{"Total Cost", FormatCurrency(r.AutoLoan.TotalCost)},
		}
	case r.HomeEquity != nil:
		qualified := "yes"
		if !r.HomeEquity.Qualification.Qualified {
			qualified = "no - " + r.HomeEquity.Qualification.Reason
		}
		return [][2]string{
			{"Available Equity", FormatCurrency(r.HomeEquity.Snapshot.AvailableEquity)},
			{"Current LTV", FormatPercentage(r.HomeEquity.Snapshot.CurrentLTV)},
			{"Max Borrowable", FormatCurrency(r.HomeEquity.Snapshot.MaxBorrowable)},
			{"Qualified", qualified},
		}
	case r.Retirement != nil:
		onTrack := "yes"
		if !r.Retirement.CanRetireComfortably {
			onTrack = "no - shortfall " + FormatCurrency(r.Retirement.Shortfall)
		}
		return [][2]string{
			{"Projected at Retirement", FormatCurrency(r.Retirement.TotalAtRetirement)},
			{"Required at Retirement", FormatCurrency(r.Retirement.RequiredSavingsAtRetirement)},
			{"On Track", onTrack},
			{"Extra Monthly Needed", FormatCurrency(r.Retirement.MonthlyContributionNeeded)},
		}
	case r.RMD != nil:
		if !r.RMD.IsRequired {
			return [][2]string{
				{"RMD Start Age", intToString(r.RMD.RMDStartAge)},
				{"Required This Year", "no"},
			}
		}
		return [][2]string{
			{"Distribution Period", r.RMD.Divisor.Period.StringFixed(1)},
			{"Required Minimum", FormatCurrency(r.RMD.RMDAmount)},
			{"First Deadline", r.RMD.FirstRMDDeadline.Format("January 2, 2006")},
		}
	case r.Rent != nil:
		return [][2]string{
			{"Max Monthly Rent", FormatCurrency(r.Rent.MaxMonthlyRent)},
			{"After Obligations", FormatCurrency(r.Rent.ConservativeMonthlyRent)},
		}
	case r.RentVsBuy != nil:
		crossover := "never within window"
		if r.RentVsBuy.CrossoverYear > 0 {
			crossover = "year " + intToString(r.RentVsBuy.CrossoverYear)
		}
		return [][2]string{
			{"Monthly Mortgage", FormatCurrency(r.RentVsBuy.MonthlyMortgagePayment)},
			{"Buying Cheaper From", crossover},
		}
	}
	return nil
}

func writePDFProjectionTable(pdf *fpdf.Fpdf, rr *domain.RetirementResults) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 8)
	widths := []float64{15, 28, 35, 35, 35, 35}
	headers := []string{"Age", "Phase", "Begin", "In/Out", "Return", "End"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 5, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, year := range rr.Projection {
		flow := year.Contribution.Add(year.EmployerMatch)
		if year.Phase == domain.PhaseRetirement {
			flow = year.Withdrawal.Neg()
		}
		cells := []string{
			intToString(year.Age),
			string(year.Phase),
			year.BeginningBalance.StringFixed(0),
			flow.StringFixed(0),
			year.InvestmentReturn.StringFixed(0),
			year.EndingBalance.StringFixed(0),
		}
		for i, cell := range cells {
			align := "R"
			if i == 1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 5, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
