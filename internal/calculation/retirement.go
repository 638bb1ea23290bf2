package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

// ProjectRetirement runs the two-phase retirement projection: accumulation
// through retirement age, then drawdown to life expectancy. The per-year
// loop keeps age == retirementAge in the accumulation phase; drawdown
// starts the following year. Inputs are assumed to have passed
// ValidateRetirementProfile; the engine itself never errors.
func ProjectRetirement(profile domain.RetirementProfile) *domain.RetirementResults {
	preReturn := profile.PreRetirementReturn.Div(hundred)
	postReturn := profile.PostRetirementReturn.Div(hundred)
	inflation := profile.InflationRatePercent.Div(hundred)
	matchRate := profile.EmployerMatchPercent.Div(hundred)

	projection := make([]domain.YearProjection, 0, profile.LifeExpectancy-profile.CurrentAge)
	balance := profile.CurrentSavings
	depletedAge := 0

	for age := profile.CurrentAge + 1; age <= profile.LifeExpectancy; age++ {
		year := domain.YearProjection{
			Age:              age,
			BeginningBalance: balance,
		}

		if age <= profile.RetirementAge {
			year.Phase = domain.PhaseAccumulation
			year.Contribution = profile.AnnualContribution
			year.EmployerMatch = profile.AnnualContribution.Mul(matchRate)
			year.InvestmentReturn = balance.Mul(preReturn)
			balance = balance.Add(year.Contribution).Add(year.EmployerMatch).Add(year.InvestmentReturn)
		} else {
			year.Phase = domain.PhaseRetirement
			yearsRetired := int64(age - profile.RetirementAge)
			expense := profile.DesiredAnnualIncome.Mul(one.Add(inflation).Pow(decimal.NewFromInt(yearsRetired)))
			withdrawal := expense.Sub(profile.SocialSecurityIncome).Sub(profile.OtherRetirementIncome)
			if withdrawal.IsNegative() {
				withdrawal = decimal.Zero
			}
			year.Withdrawal = withdrawal
			year.InvestmentReturn = balance.Mul(postReturn)
			balance = balance.Add(year.InvestmentReturn).Sub(withdrawal)
			if balance.LessThanOrEqual(decimal.Zero) {
				// The balance stalls at zero; running out of money is a
				// result, not an error.
				if balance.IsNegative() && depletedAge == 0 {
					depletedAge = age
				}
				balance = decimal.Zero
			}
		}

		year.EndingBalance = balance
		projection = append(projection, year)
	}

	yearsToRetirement := profile.YearsToRetirement()
	totalAtRetirement := futureValue(profile.CurrentSavings, preReturn, yearsToRetirement).
		Add(futureValueOfAnnuity(profile.AnnualContribution.Mul(one.Add(matchRate)), preReturn, yearsToRetirement))

	// Income gap at retirement, in retirement-year dollars, funded by the
	// 4% rule.
	inflatedIncome := profile.DesiredAnnualIncome.Mul(one.Add(inflation).Pow(decimal.NewFromInt(int64(yearsToRetirement))))
	incomeGap := inflatedIncome.Sub(profile.SocialSecurityIncome).Sub(profile.OtherRetirementIncome)
	if incomeGap.IsNegative() {
		incomeGap = decimal.Zero
	}
	requiredSavings := incomeGap.Div(fourPercent)

	canRetire := totalAtRetirement.GreaterThanOrEqual(requiredSavings)
	shortfall := requiredSavings.Sub(totalAtRetirement)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	results := &domain.RetirementResults{
		TotalAtRetirement:           totalAtRetirement,
		RequiredSavingsAtRetirement: requiredSavings,
		CanRetireComfortably:        canRetire,
		Shortfall:                   shortfall,
		MonthlyContributionNeeded:   monthlyContributionNeeded(profile, preReturn, matchRate, requiredSavings),
		SavingsDepletedAge:          depletedAge,
		Projection:                  projection,
	}
	if len(projection) > 0 {
		results.FinalBalance = projection[len(projection)-1].EndingBalance
	}
	return results
}

// futureValue compounds a present amount at the given annual rate.
func futureValue(present, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return present
	}
	return present.Mul(one.Add(annualRate).Pow(decimal.NewFromInt(int64(years))))
}

// futureValueOfAnnuity computes the future value of a level end-of-year
// payment stream compounded at the given annual rate.
func futureValueOfAnnuity(payment, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(years))
	if annualRate.IsZero() {
		return payment.Mul(n)
	}
	factor := one.Add(annualRate).Pow(n).Sub(one).Div(annualRate)
	return payment.Mul(factor)
}

// monthlyContributionNeeded solves for the level monthly deposit that closes
// the gap between the future value of current savings and the required
// savings target, net of the employer match. Zero when the target is
// already met.
func monthlyContributionNeeded(profile domain.RetirementProfile, annualRate, matchRate, requiredSavings decimal.Decimal) decimal.Decimal {
	years := profile.YearsToRetirement()
	if years <= 0 {
		return decimal.Zero
	}

	gap := requiredSavings.Sub(futureValue(profile.CurrentSavings, annualRate, years))
	if gap.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	months := years * monthsPerYear
	monthlyRate := annualRate.Div(twelve)
	var monthly decimal.Decimal
	if monthlyRate.IsZero() {
		monthly = gap.Div(decimal.NewFromInt(int64(months)))
	} else {
		factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months))).Sub(one).Div(monthlyRate)
		monthly = gap.Div(factor)
	}
	return monthly.Div(one.Add(matchRate))
}
