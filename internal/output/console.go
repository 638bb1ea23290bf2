package output

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
)

// ConsoleFormatter renders a human-readable plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ReportSet) ([]byte, error) {
	buf := &bytes.Buffer{}

	title := results.Title
	if title == "" {
		title = "PERSONAL FINANCE CALCULATIONS"
	}
	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintln(buf)

	for i := range results.Reports {
		writeReport(buf, &results.Reports[i])
	}
	return buf.Bytes(), nil
}

func writeReport(buf *bytes.Buffer, r *domain.CalculationReport) {
	fmt.Fprintf(buf, "--- %s (%s) ---\n", r.Name, r.Calculator)
	for _, w := range r.Warnings {
		fmt.Fprintf(buf, "warning: %s\n", w)
	}

	switch {
	case r.Amortization != nil:
		writeAmortization(buf, r.Amortization)
	case r.LoanCost != nil:
		writeLoanCost(buf, r.LoanCost)
	case r.AutoLoan != nil:
		writeAutoLoan(buf, r.AutoLoan)
	case r.HomeEquity != nil:
		writeHomeEquity(buf, r.HomeEquity)
	case r.Retirement != nil:
		writeRetirement(buf, r.Retirement)
	case r.RMD != nil:
		writeRMD(buf, r.RMD)
	case r.Rent != nil:
		writeRent(buf, r.Rent)
	case r.RentVsBuy != nil:
		writeRentVsBuy(buf, r.RentVsBuy)
	}
	fmt.Fprintln(buf)
}

func writeAmortization(buf *bytes.Buffer, a *domain.AmortizationResult) {
	fmt.Fprintf(buf, "Monthly Payment:  %s\n", FormatCurrency(a.Payment))
	fmt.Fprintf(buf, "Total Paid:       %s\n", FormatCurrency(a.TotalPaid))
	fmt.Fprintf(buf, "Total Interest:   %s\n", FormatCurrency(a.TotalInterest))
	fmt.Fprintf(buf, "Months:           %d\n", len(a.Schedule))
	writeScheduleSample(buf, a.Schedule)
}

// writeScheduleSample prints the first and last few rows of a long schedule
// so the console report stays readable.
func writeScheduleSample(buf *bytes.Buffer, schedule []domain.AmortizationRow) {
	const edge = 3
	fmt.Fprintf(buf, "%6s %12s %12s %12s %14s\n", "Month", "Payment", "Principal", "Interest", "Balance")
	for i, row := range schedule {
		if len(schedule) > 2*edge && i == edge {
			fmt.Fprintf(buf, "%6s\n", "...")
		}
		if len(schedule) > 2*edge && i >= edge && i < len(schedule)-edge {
			continue
		}
		fmt.Fprintf(buf, "%6d %12s %12s %12s %14s\n",
			row.Month,
			row.Payment.StringFixed(2),
			row.PrincipalPortion.StringFixed(2),
			row.InterestPortion.StringFixed(2),
			row.EndingBalance.StringFixed(2))
	}
}

func writeLoanCost(buf *bytes.Buffer, lc *domain.LoanCostSummary) {
	fmt.Fprintf(buf, "Principal:          %s\n", FormatCurrency(lc.Principal))
	fmt.Fprintf(buf, "Monthly Payment:    %s\n", FormatCurrency(lc.MonthlyPayment))
	fmt.Fprintf(buf, "Total Payments:     %s\n", FormatCurrency(lc.TotalPayments))
	fmt.Fprintf(buf, "Total Interest:     %s\n", FormatCurrency(lc.TotalInterest))
	fmt.Fprintf(buf, "Total Fees:         %s\n", FormatCurrency(lc.TotalFees))
	fmt.Fprintf(buf, "Total Cost:         %s\n", FormatCurrency(lc.TotalCost))
	fmt.Fprintf(buf, "Approximate APR:    %s (not a regulatory APR)\n", FormatPercentage(lc.ApproximateAPR))
	fmt.Fprintf(buf, "Effective Interest: %s\n", FormatPercentage(lc.EffectiveInterestRate))
}

func writeAutoLoan(buf *bytes.Buffer, al *domain.AutoLoanResult) {
	fmt.Fprintf(buf, "Amount Financed:  %s\n", FormatCurrency(al.AmountFinanced))
	fmt.Fprintf(buf, "Sales Tax:        %s\n", FormatCurrency(al.SalesTaxAmount))
	fmt.Fprintf(buf, "Upfront Costs:    %s\n", FormatCurrency(al.UpfrontCosts))
	fmt.Fprintf(buf, "Monthly Payment:  %s\n", FormatCurrency(al.MonthlyPayment))
	fmt.Fprintf(buf, "Total Interest:   %s\n", FormatCurrency(al.TotalInterest))
	fmt.Fprintf(buf, "Total Cost:       %s\n", FormatCurrency(al.TotalCost))
}

func writeHomeEquity(buf *bytes.Buffer, he *domain.HomeEquityLoanResult) {
	snap := he.Snapshot
	fmt.Fprintf(buf, "Home Value:        %s\n", FormatCurrency(snap.HomeValue))
	fmt.Fprintf(buf, "Mortgage Balance:  %s\n", FormatCurrency(snap.MortgageBalance))
	fmt.Fprintf(buf, "Available Equity:  %s\n", FormatCurrency(snap.AvailableEquity))
	fmt.Fprintf(buf, "Current LTV:       %s\n", FormatPercentage(snap.CurrentLTV))
	fmt.Fprintf(buf, "CLTV After Loan:   %s\n", FormatPercentage(snap.CLTVAfterLoan))
	fmt.Fprintf(buf, "Max Borrowable:    %s\n", FormatCurrency(snap.MaxBorrowable))
	if he.Qualification.Qualified {
		fmt.Fprintln(buf, "Qualified:         yes")
	} else {
		fmt.Fprintf(buf, "Qualified:         no (%s)\n", he.Qualification.Reason)
	}
	if he.LoanCost != nil {
		fmt.Fprintln(buf)
		writeLoanCost(buf, he.LoanCost)
	}
}

func writeRetirement(buf *bytes.Buffer, rr *domain.RetirementResults) {
	fmt.Fprintf(buf, "Projected at Retirement:  %s\n", FormatCurrency(rr.TotalAtRetirement))
	fmt.Fprintf(buf, "Required at Retirement:   %s\n", FormatCurrency(rr.RequiredSavingsAtRetirement))
	if rr.CanRetireComfortably {
		fmt.Fprintln(buf, "On Track:                 yes")
	} else {
		fmt.Fprintf(buf, "On Track:                 no (shortfall %s)\n", FormatCurrency(rr.Shortfall))
	}
	fmt.Fprintf(buf, "Extra Monthly Needed:     %s\n", FormatCurrency(rr.MonthlyContributionNeeded))
	fmt.Fprintf(buf, "Balance at Life Expect.:  %s\n", FormatCurrency(rr.FinalBalance))
	if rr.SavingsDepletedAge > 0 {
		fmt.Fprintf(buf, "Savings Depleted at Age:  %d\n", rr.SavingsDepletedAge)
	}

	fmt.Fprintf(buf, "%5s %-13s %14s %12s %12s %14s\n", "Age", "Phase", "Begin", "In/Out", "Return", "End")
	for _, year := range rr.Projection {
		flow := year.Contribution.Add(year.EmployerMatch)
		if year.Phase == domain.PhaseRetirement {
			flow = year.Withdrawal.Neg()
		}
		fmt.Fprintf(buf, "%5d %-13s %14s %12s %12s %14s\n",
			year.Age, year.Phase,
			year.BeginningBalance.StringFixed(0),
			flow.StringFixed(0),
			year.InvestmentReturn.StringFixed(0),
			year.EndingBalance.StringFixed(0))
	}
}

func writeRMD(buf *bytes.Buffer, rmd *domain.RMDResults) {
	fmt.Fprintf(buf, "Owner Age:            %d\n", rmd.OwnerAge)
	fmt.Fprintf(buf, "RMD Start Age:        %d\n", rmd.RMDStartAge)
	if !rmd.IsRequired {
		fmt.Fprintln(buf, "No distribution required this year")
		return
	}
	fmt.Fprintf(buf, "Distribution Period:  %s (%s, %s)\n",
		rmd.Divisor.Period.StringFixed(1), rmd.Divisor.Table, rmd.Divisor.Source)
	fmt.Fprintf(buf, "Required Minimum:     %s\n", FormatCurrency(rmd.RMDAmount))
	fmt.Fprintf(buf, "First RMD Deadline:   %s\n", rmd.FirstRMDDeadline.Format("January 2, 2006"))
	fmt.Fprintf(buf, "This Year's Deadline: %s\n", rmd.CurrentRMDDeadline.Format("January 2, 2006"))

	if len(rmd.Projection) > 0 {
		fmt.Fprintf(buf, "%6s %5s %14s %9s %12s %14s\n", "Year", "Age", "Begin", "Divisor", "RMD", "End")
		for _, year := range rmd.Projection {
			fmt.Fprintf(buf, "%6d %5d %14s %9s %12s %14s\n",
				year.Year, year.Age,
				year.BeginningBalance.StringFixed(0),
				year.Divisor.Period.StringFixed(1),
				year.RMDAmount.StringFixed(0),
				year.EndingBalance.StringFixed(0))
		}
	}
}

func writeRent(buf *bytes.Buffer, rent *domain.RentAffordability) {
	fmt.Fprintf(buf, "Guideline:          %s of gross income\n", FormatPercentage(rent.GuidelinePercent))
	fmt.Fprintf(buf, "Max Monthly Rent:   %s\n", FormatCurrency(rent.MaxMonthlyRent))
	fmt.Fprintf(buf, "After Obligations:  %s\n", FormatCurrency(rent.ConservativeMonthlyRent))
}

func writeRentVsBuy(buf *bytes.Buffer, rvb *domain.RentVsBuyResult) {
	fmt.Fprintf(buf, "Monthly Mortgage:  %s\n", FormatCurrency(rvb.MonthlyMortgagePayment))
	if rvb.CrossoverYear > 0 {
		fmt.Fprintf(buf, "Buying is cheaper from year %d\n", rvb.CrossoverYear)
	} else {
		fmt.Fprintln(buf, "Renting stays cheaper over the comparison window")
	}
	fmt.Fprintf(buf, "%6s %16s %16s %16s\n", "Year", "Cum. Rent", "Buy Net Cost", "Home Equity")
	for _, year := range rvb.Years {
		fmt.Fprintf(buf, "%6d %16s %16s %16s\n",
			year.Year,
			year.CumulativeRent.StringFixed(0),
			year.BuyNetCost.StringFixed(0),
			year.HomeEquity.StringFixed(0))
	}
}
