package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

// Soft validation for the projection engines. Errors gate calculation;
// warnings flag unusually large values and are surfaced alongside results.

var (
	unusualRatePercent  = decimal.NewFromInt(30)
	unusualMatchPercent = decimal.NewFromInt(100)
	minReturnPercent    = decimal.NewFromInt(-50)
)

// ValidateRetirementProfile checks a retirement profile for blocking errors
// and advisory warnings. The projection engine must only be called when the
// result is valid.
func ValidateRetirementProfile(p domain.RetirementProfile) domain.ValidationResult {
	var vr domain.ValidationResult

	if p.CurrentAge <= 0 {
		vr.AddError("current age must be greater than 0")
	}
	if p.RetirementAge <= p.CurrentAge {
		vr.AddError("retirement age must be greater than current age")
	}
	if p.LifeExpectancy < p.RetirementAge {
		vr.AddError("life expectancy must not be less than retirement age")
	}
	if p.CurrentSavings.IsNegative() {
		vr.AddError("current savings must not be negative")
	}
	if p.AnnualContribution.IsNegative() {
		vr.AddError("annual contribution must not be negative")
	}
	if p.EmployerMatchPercent.IsNegative() {
		vr.AddError("employer match must not be negative")
	}
	if p.DesiredAnnualIncome.IsNegative() {
		vr.AddError("desired annual income must not be negative")
	}
	if p.SocialSecurityIncome.IsNegative() {
		vr.AddError("social security income must not be negative")
	}
	if p.OtherRetirementIncome.IsNegative() {
		vr.AddError("other income must not be negative")
	}
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"pre-retirement return", p.PreRetirementReturn},
		{"post-retirement return", p.PostRetirementReturn},
		{"inflation rate", p.InflationRatePercent},
	} {
		if rate.value.LessThan(minReturnPercent) {
			vr.AddError("%s must not be below %s%%", rate.name, minReturnPercent)
		}
	}

	if p.EmployerMatchPercent.GreaterThan(unusualMatchPercent) {
		vr.AddWarning("employer match above 100%% is unusual")
	}
	if p.PreRetirementReturn.GreaterThan(unusualRatePercent) {
		vr.AddWarning("pre-retirement return above %s%% is unusually high", unusualRatePercent)
	}
	if p.PostRetirementReturn.GreaterThan(unusualRatePercent) {
		vr.AddWarning("post-retirement return above %s%% is unusually high", unusualRatePercent)
	}

	return vr
}

// ValidateRMDProfile checks an RMD profile for blocking errors and advisory
// warnings.
func ValidateRMDProfile(p domain.RMDProfile) domain.ValidationResult {
	var vr domain.ValidationResult

	if p.BirthYear <= 0 {
		vr.AddError("birth year is required")
	}
	if p.RMDYear <= p.BirthYear {
		vr.AddError("RMD year must be after the birth year")
	}
	if p.AccountBalance.IsNegative() {
		vr.AddError("account balance must not be negative")
	}
	if p.HasSpouseBeneficiary && p.SpouseBirthYear <= 0 {
		vr.AddError("spouse birth year is required when a spouse beneficiary is named")
	}
	if p.YearsToProject < 0 {
		vr.AddError("years to project must not be negative")
	}
	if p.EstimatedReturnRate.LessThan(minReturnPercent) {
		vr.AddError("estimated return must not be below %s%%", minReturnPercent)
	}

	if p.EstimatedReturnRate.GreaterThan(unusualRatePercent) {
		vr.AddWarning("estimated return above %s%% is unusually high", unusualRatePercent)
	}

	return vr
}
