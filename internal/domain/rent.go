package domain

import "github.com/shopspring/decimal"

// RentAffordabilityInput describes a renter's finances. GuidelinePercent is
// the share of gross income budgeted for rent; zero means the standard 30%.
type RentAffordabilityInput struct {
	AnnualIncome     decimal.Decimal `json:"annualIncome" yaml:"annual_income"`
	MonthlyDebt      decimal.Decimal `json:"monthlyDebt" yaml:"monthly_debt"`
	GuidelinePercent decimal.Decimal `json:"guidelinePercent" yaml:"guideline_percent"`
}

// RentAffordability is the affordable-rent range for a renter.
type RentAffordability struct {
	MaxMonthlyRent          decimal.Decimal `json:"maxMonthlyRent"`
	ConservativeMonthlyRent decimal.Decimal `json:"conservativeMonthlyRent"`
	GuidelinePercent        decimal.Decimal `json:"guidelinePercent"`
}

// RentVsBuyInput describes the two sides of a rent-vs-buy comparison. The
// buy side is financed with a fixed-rate mortgage after the down payment.
type RentVsBuyInput struct {
	HomePrice              decimal.Decimal `json:"homePrice" yaml:"home_price"`
	DownPayment            decimal.Decimal `json:"downPayment" yaml:"down_payment"`
	MortgageRatePercent    decimal.Decimal `json:"mortgageRatePercent" yaml:"mortgage_rate_percent"`
	MortgageTermYears      int             `json:"mortgageTermYears" yaml:"mortgage_term_years"`
	PropertyTaxPercent     decimal.Decimal `json:"propertyTaxPercent" yaml:"property_tax_percent"`
	MaintenancePercent     decimal.Decimal `json:"maintenancePercent" yaml:"maintenance_percent"`
	AnnualInsurance        decimal.Decimal `json:"annualInsurance" yaml:"annual_insurance"`
	AppreciationPercent    decimal.Decimal `json:"appreciationPercent" yaml:"appreciation_percent"`
	MonthlyRent            decimal.Decimal `json:"monthlyRent" yaml:"monthly_rent"`
	RentGrowthPercent      decimal.Decimal `json:"rentGrowthPercent" yaml:"rent_growth_percent"`
	ComparisonYears        int             `json:"comparisonYears" yaml:"comparison_years"`
}

// RentVsBuyYear is one year of cumulative cost on each side of the
// comparison. BuyNetCost subtracts accumulated home equity from outlays.
type RentVsBuyYear struct {
	Year           int             `json:"year"`
	RentCost       decimal.Decimal `json:"rentCost"`
	CumulativeRent decimal.Decimal `json:"cumulativeRent"`
	BuyOutlay      decimal.Decimal `json:"buyOutlay"`
	HomeEquity     decimal.Decimal `json:"homeEquity"`
	BuyNetCost     decimal.Decimal `json:"buyNetCost"`
}

// RentVsBuyResult reports the comparison. CrossoverYear is the first year
// buying is cumulatively cheaper than renting, or 0 if it never happens
// within the comparison window.
type RentVsBuyResult struct {
	MonthlyMortgagePayment decimal.Decimal `json:"monthlyMortgagePayment"`
	CrossoverYear          int             `json:"crossoverYear"`
	BuyingIsCheaper        bool            `json:"buyingIsCheaper"`
	Years                  []RentVsBuyYear `json:"years"`
}
