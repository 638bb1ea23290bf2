package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DivisorSource tags how a life-expectancy divisor was obtained. Callers
// that care about precision can distinguish an exact table hit from the
// documented fallback approximation.
type DivisorSource string

const (
	DivisorSourceExact    DivisorSource = "exact"
	DivisorSourceFallback DivisorSource = "fallback"
)

// DivisorResult is a life-expectancy divisor together with its provenance.
type DivisorResult struct {
	Period decimal.Decimal `json:"period"`
	Source DivisorSource   `json:"source"`
	Table  string          `json:"table"`
}

// RMDProfile is the input to the required-minimum-distribution engine.
// AccountBalance is the balance as of December 31 of the year before
// RMDYear. Spouse fields matter only when HasSpouseBeneficiary is set.
type RMDProfile struct {
	BirthYear            int             `json:"birthYear" yaml:"birth_year"`
	RMDYear              int             `json:"rmdYear" yaml:"rmd_year"`
	AccountBalance       decimal.Decimal `json:"accountBalance" yaml:"account_balance"`
	HasSpouseBeneficiary bool            `json:"hasSpouseBeneficiary" yaml:"has_spouse_beneficiary"`
	SpouseBirthYear      int             `json:"spouseBirthYear" yaml:"spouse_birth_year"`
	EstimatedReturnRate  decimal.Decimal `json:"estimatedReturnRate" yaml:"estimated_return_rate"`
	YearsToProject       int             `json:"yearsToProject" yaml:"years_to_project"`
}

// OwnerAge returns the account owner's age in the RMD tax year.
func (p RMDProfile) OwnerAge() int {
	return p.RMDYear - p.BirthYear
}

// SpouseAge returns the spouse beneficiary's age in the RMD tax year, or 0
// when no spouse beneficiary is named.
func (p RMDProfile) SpouseAge() int {
	if !p.HasSpouseBeneficiary {
		return 0
	}
	return p.RMDYear - p.SpouseBirthYear
}

// RMDYearProjection is one year of the multi-year depletion projection.
type RMDYearProjection struct {
	Year             int             `json:"year"`
	Age              int             `json:"age"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	Divisor          DivisorResult   `json:"divisor"`
	RMDAmount        decimal.Decimal `json:"rmdAmount"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// RMDResults is the output of the RMD engine for a single tax year plus an
// optional multi-year projection.
type RMDResults struct {
	OwnerAge           int                 `json:"ownerAge"`
	RMDStartAge        int                 `json:"rmdStartAge"`
	IsRequired         bool                `json:"isRequired"`
	Divisor            DivisorResult       `json:"divisor"`
	RMDAmount          decimal.Decimal     `json:"rmdAmount"`
	FirstRMDDeadline   time.Time           `json:"firstRmdDeadline"`
	CurrentRMDDeadline time.Time           `json:"currentRmdDeadline"`
	Projection         []RMDYearProjection `json:"projection,omitempty"`
}
