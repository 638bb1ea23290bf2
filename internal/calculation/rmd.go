package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
)

const maxRMDAge = 120

// RMDStartAge returns the age at which required minimum distributions begin
// for an owner born in birthYear. The SECURE 2.0 schedule moves the 1960+
// cohort to 75, but only for calendar years 2033 and later; before then the
// transitional rule keeps them at 73. asOfYear supplies the calendar year
// for that check.
func RMDStartAge(birthYear, asOfYear int) int {
	switch {
	case birthYear < 1951:
		return 72
	case birthYear <= 1959:
		return 73
	default:
		if asOfYear >= 2033 {
			return 75
		}
		return 73
	}
}

// lookupDivisor selects the distribution period for an owner and optional
// spouse beneficiary. A spouse more than ten years younger routes to the
// Joint Life table; pairs missing from the sparse sample fall back to
// min(single-life(spouse), uniform(owner)), tagged as a fallback estimate.
func lookupDivisor(ownerAge, spouseAge int, hasSpouse bool) domain.DivisorResult {
	if hasSpouse && ownerAge-spouseAge > 10 {
		if d, ok := jointLifeTable[agePair{Owner: ownerAge, Spouse: spouseAge}]; ok {
			return domain.DivisorResult{Period: d, Source: domain.DivisorSourceExact, Table: "joint_life"}
		}
		spouseDivisor := singleLifeDivisor(spouseAge)
		ownerDivisor := uniformDivisor(ownerAge)
		d := spouseDivisor
		if ownerDivisor.GreaterThan(decimal.Zero) && ownerDivisor.LessThan(d) {
			d = ownerDivisor
		}
		return domain.DivisorResult{Period: d, Source: domain.DivisorSourceFallback, Table: "joint_life"}
	}

	return domain.DivisorResult{
		Period: uniformDivisor(ownerAge),
		Source: domain.DivisorSourceExact,
		Table:  "uniform_lifetime",
	}
}

// CalculateRMD computes the required minimum distribution for the profile's
// tax year and, when projection parameters are supplied, a year-by-year
// balance depletion projection. Inputs are assumed to have passed
// ValidateRMDProfile.
func CalculateRMD(profile domain.RMDProfile) *domain.RMDResults {
	ownerAge := profile.OwnerAge()
	startAge := RMDStartAge(profile.BirthYear, profile.RMDYear)
	rmdStartYear := profile.BirthYear + startAge

	results := &domain.RMDResults{
		OwnerAge:    ownerAge,
		RMDStartAge: startAge,
		IsRequired:  ownerAge >= startAge,
		// The first RMD may be deferred to April 1 of the year after the
		// start year; every later year is due December 31.
		FirstRMDDeadline:   time.Date(rmdStartYear+1, time.April, 1, 0, 0, 0, 0, time.UTC),
		CurrentRMDDeadline: time.Date(profile.RMDYear, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	if !results.IsRequired {
		return results
	}

	results.Divisor = lookupDivisor(ownerAge, profile.SpouseAge(), profile.HasSpouseBeneficiary)
	results.RMDAmount = divideGuarded(profile.AccountBalance, results.Divisor.Period)

	if profile.YearsToProject > 0 {
		results.Projection = projectRMDDepletion(profile, ownerAge)
	}
	return results
}

// projectRMDDepletion iterates year by year, recomputing the divisor for the
// then-current ages, taking that year's RMD, and growing the remainder at
// the estimated return. Stops at the projection horizon, age 120, or a
// depleted balance, whichever comes first.
func projectRMDDepletion(profile domain.RMDProfile, ownerAge int) []domain.RMDYearProjection {
	growth := one.Add(profile.EstimatedReturnRate.Div(hundred))
	balance := profile.AccountBalance

	projection := make([]domain.RMDYearProjection, 0, profile.YearsToProject)
	for i := 0; i < profile.YearsToProject; i++ {
		age := ownerAge + i
		if age > maxRMDAge {
			break
		}
		spouseAge := 0
		if profile.HasSpouseBeneficiary {
			spouseAge = profile.SpouseAge() + i
		}

		divisor := lookupDivisor(age, spouseAge, profile.HasSpouseBeneficiary)
		rmd := divideGuarded(balance, divisor.Period)
		ending := balance.Sub(rmd).Mul(growth)
		if ending.IsNegative() {
			ending = decimal.Zero
		}

		projection = append(projection, domain.RMDYearProjection{
			Year:             profile.RMDYear + i,
			Age:              age,
			BeginningBalance: balance,
			Divisor:          divisor,
			RMDAmount:        rmd,
			EndingBalance:    ending,
		})

		balance = ending
		if balance.IsZero() {
			break
		}
	}
	return projection
}

// divideGuarded divides balance by the distribution period, returning zero
// for a zero period instead of dividing by zero.
func divideGuarded(balance, period decimal.Decimal) decimal.Decimal {
	if period.IsZero() {
		return decimal.Zero
	}
	return balance.Div(period)
}
