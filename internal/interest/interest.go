// Package interest computes simple interest accrued on a deposito account.
//
// Time is measured in calendar months: only the year and month of the two
// dates matter, so an account opened on the 28th and withdrawn from on the 1st
// of the following month has held its balance for one month.
package interest

import (
	"time"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// MonthsBetween returns the signed difference of the calendar month indices
// of start and end, evaluated in UTC. Day-of-month and time-of-day are ignored.
func MonthsBetween(start, end time.Time) int {
	start, end = start.UTC(), end.UTC()
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*12 + months
}

// MonthlyReturn converts a yearly rate into a monthly one.
func MonthlyReturn(yearlyReturn decimal.Decimal) decimal.Decimal {
	return yearlyReturn.Div(monthsPerYear)
}

// Accrue returns principal × months × yearlyReturn / 12.
// The division is applied last so whole-number results stay exact.
// A negative months value yields negative interest.
func Accrue(principal, yearlyReturn decimal.Decimal, months int) decimal.Decimal {
	return principal.
		Mul(decimal.NewFromInt(int64(months))).
		Mul(yearlyReturn).
		Div(monthsPerYear)
}

// Withdrawal is the outcome of applying a withdrawal to a balance.
type Withdrawal struct {
	Months         int
	InterestEarned decimal.Decimal
	BalanceAfter   decimal.Decimal
}

// ApplyWithdrawal accrues interest on balanceBefore for the months between
// openedAt and withdrawnAt, then subtracts amount. It performs no guard;
// callers decide what a negative BalanceAfter means.
func ApplyWithdrawal(balanceBefore, amount, yearlyReturn decimal.Decimal, openedAt, withdrawnAt time.Time) Withdrawal {
	months := MonthsBetween(openedAt, withdrawnAt)
	earned := Accrue(balanceBefore, yearlyReturn, months)
	return Withdrawal{
		Months:         months,
		InterestEarned: earned,
		BalanceAfter:   balanceBefore.Sub(amount).Add(earned),
	}
}
