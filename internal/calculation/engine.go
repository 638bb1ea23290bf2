package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/fincalc/fincalc/internal/domain"
)

// Engine dispatches calculation requests to the individual calculators.
// Every calculator is a pure function; the engine holds no state beyond its
// logger, so an Engine is safe to reuse across any number of runs.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with the no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// RunDocument runs every request in the document and collects the reports.
// The first failing request aborts the run.
func (e *Engine) RunDocument(doc *domain.Document) (*domain.ReportSet, error) {
	set := &domain.ReportSet{
		Title:       doc.Title,
		GeneratedAt: time.Now().UTC(),
		Reports:     make([]domain.CalculationReport, 0, len(doc.Requests)),
	}
	for i := range doc.Requests {
		report, err := e.Run(&doc.Requests[i])
		if err != nil {
			return nil, fmt.Errorf("request %q: %w", doc.Requests[i].Name, err)
		}
		set.Reports = append(set.Reports, *report)
	}
	return set, nil
}

// Run executes a single request. Loan-side calculators fail hard on invalid
// input; the projection engines are gated by their soft validators, whose
// errors are reported here and whose warnings are attached to the report.
func (e *Engine) Run(req *domain.Request) (*domain.CalculationReport, error) {
	report := &domain.CalculationReport{
		Name:       req.Name,
		Calculator: req.Calculator,
	}
	e.Logger.Debugf("running %s calculation %q", req.Calculator, req.Name)

	switch req.Calculator {
	case domain.CalculatorAmortization:
		if req.Loan == nil {
			return nil, fmt.Errorf("amortization request needs a loan block")
		}
		result, err := Amortize(*req.Loan)
		if err != nil {
			return nil, err
		}
		report.Amortization = result

	case domain.CalculatorLoanCost:
		if req.LoanCost == nil {
			return nil, fmt.Errorf("loan cost request needs a loan_cost block")
		}
		result, err := CalculateLoanCost(req.LoanCost.Principal, req.LoanCost.AnnualRatePercent, req.LoanCost.TermYears, req.LoanCost.Fees)
		if err != nil {
			return nil, err
		}
		report.LoanCost = result

	case domain.CalculatorAutoLoan:
		if req.AutoLoan == nil {
			return nil, fmt.Errorf("auto loan request needs an auto_loan block")
		}
		result, err := CalculateAutoLoan(*req.AutoLoan)
		if err != nil {
			return nil, err
		}
		report.AutoLoan = result

	case domain.CalculatorHomeEquity:
		if req.HomeEquity == nil {
			return nil, fmt.Errorf("home equity request needs a home_equity block")
		}
		he := req.HomeEquity
		if he.TermYears > 0 {
			result, err := CalculateHomeEquityLoan(he.EquitySnapshot, he.AnnualRatePercent, he.TermYears, he.Fees)
			if err != nil {
				return nil, err
			}
			report.HomeEquity = result
		} else {
			snap := AnalyzeEquity(he.HomeValue, he.MortgageBalance, he.ProposedLoanAmount, he.MaxLTVPercent)
			report.HomeEquity = &domain.HomeEquityLoanResult{
				Snapshot:      snap,
				Qualification: CheckQualification(snap),
			}
		}

	case domain.CalculatorRetirement:
		if req.Retirement == nil {
			return nil, fmt.Errorf("retirement request needs a retirement block")
		}
		vr := ValidateRetirementProfile(*req.Retirement)
		if !vr.Valid() {
			return nil, fmt.Errorf("retirement profile invalid: %s", strings.Join(vr.Errors, "; "))
		}
		report.Warnings = vr.Warnings
		report.Retirement = ProjectRetirement(*req.Retirement)

	case domain.CalculatorRMD:
		if req.RMD == nil {
			return nil, fmt.Errorf("rmd request needs an rmd block")
		}
		vr := ValidateRMDProfile(*req.RMD)
		if !vr.Valid() {
			return nil, fmt.Errorf("rmd profile invalid: %s", strings.Join(vr.Errors, "; "))
		}
		report.Warnings = vr.Warnings
		report.RMD = CalculateRMD(*req.RMD)

	case domain.CalculatorRent:
		if req.Rent == nil {
			return nil, fmt.Errorf("rent request needs a rent block")
		}
		result, err := CalculateRentAffordability(*req.Rent)
		if err != nil {
			return nil, err
		}
		report.Rent = result

	case domain.CalculatorRentVsBuy:
		if req.RentVsBuy == nil {
			return nil, fmt.Errorf("rent vs buy request needs a rent_vs_buy block")
		}
		result, err := CompareRentVsBuy(*req.RentVsBuy)
		if err != nil {
			return nil, err
		}
		report.RentVsBuy = result

	default:
		return nil, fmt.Errorf("unknown calculator %q", req.Calculator)
	}

	return report, nil
}
