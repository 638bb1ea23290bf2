package domain

import "github.com/shopspring/decimal"

// ProjectionPhase tags a projection year as pre- or post-retirement.
type ProjectionPhase string

const (
	PhaseAccumulation ProjectionPhase = "accumulation"
	PhaseRetirement   ProjectionPhase = "retirement"
)

// RetirementProfile is the full input to the retirement projection engine.
// Return and inflation rates may be negative within a bounded range; all
// dollar amounts must be non-negative. Soft validation gates calculation.
type RetirementProfile struct {
	CurrentAge             int             `json:"currentAge" yaml:"current_age"`
	RetirementAge          int             `json:"retirementAge" yaml:"retirement_age"`
	LifeExpectancy         int             `json:"lifeExpectancy" yaml:"life_expectancy"`
	CurrentSavings         decimal.Decimal `json:"currentSavings" yaml:"current_savings"`
	AnnualContribution     decimal.Decimal `json:"annualContribution" yaml:"annual_contribution"`
	EmployerMatchPercent   decimal.Decimal `json:"employerMatchPercent" yaml:"employer_match_percent"`
	CurrentIncome          decimal.Decimal `json:"currentIncome" yaml:"current_income"`
	PreRetirementReturn    decimal.Decimal `json:"preRetirementReturn" yaml:"pre_retirement_return"`
	PostRetirementReturn   decimal.Decimal `json:"postRetirementReturn" yaml:"post_retirement_return"`
	InflationRatePercent   decimal.Decimal `json:"inflationRatePercent" yaml:"inflation_rate_percent"`
	DesiredAnnualIncome    decimal.Decimal `json:"desiredAnnualIncome" yaml:"desired_annual_income"`
	SocialSecurityIncome   decimal.Decimal `json:"socialSecurityIncome" yaml:"social_security_income"`
	OtherRetirementIncome  decimal.Decimal `json:"otherRetirementIncome" yaml:"other_retirement_income"`
}

// YearsToRetirement returns the number of accumulation years remaining.
func (p RetirementProfile) YearsToRetirement() int {
	return p.RetirementAge - p.CurrentAge
}

// YearProjection is a single year of the retirement projection. Exactly one
// of the contribution or withdrawal groups is populated depending on Phase.
type YearProjection struct {
	Age              int             `json:"age"`
	Phase            ProjectionPhase `json:"phase"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	Contribution     decimal.Decimal `json:"contribution"`
	EmployerMatch    decimal.Decimal `json:"employerMatch"`
	InvestmentReturn decimal.Decimal `json:"investmentReturn"`
	Withdrawal       decimal.Decimal `json:"withdrawal"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// RetirementResults aggregates the projection with headline metrics.
// RequiredSavingsAtRetirement applies the 4% rule to the inflation-adjusted
// income gap at retirement.
type RetirementResults struct {
	TotalAtRetirement           decimal.Decimal  `json:"totalAtRetirement"`
	RequiredSavingsAtRetirement decimal.Decimal  `json:"requiredSavingsAtRetirement"`
	CanRetireComfortably        bool             `json:"canRetireComfortably"`
	Shortfall                   decimal.Decimal  `json:"shortfall"`
	MonthlyContributionNeeded   decimal.Decimal  `json:"monthlyContributionNeeded"`
	FinalBalance                decimal.Decimal  `json:"finalBalance"`
	SavingsDepletedAge          int              `json:"savingsDepletedAge"` // 0 when savings last through life expectancy
	Projection                  []YearProjection `json:"projection"`
}
