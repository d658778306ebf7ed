package interest_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/interest"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same month next day", date(2025, 1, 15), date(2025, 1, 16), 0},
		{"month boundary one day apart", date(2025, 1, 31), date(2025, 2, 1), 1},
		{"opened late in month", date(2025, 1, 28), date(2025, 2, 1), 1},
		{"one full year", date(2024, 6, 1), date(2025, 6, 1), 12},
		{"end before start", date(2025, 3, 1), date(2025, 1, 1), -2},
		{"across year boundary", date(2024, 11, 30), date(2025, 2, 1), 3},
		{"same instant", date(2025, 5, 5), date(2025, 5, 5), 0},
		{
			name:  "time of day ignored",
			start: time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC),
			end:   time.Date(2025, 5, 1, 0, 0, 1, 0, time.UTC),
			want:  1,
		},
		{
			name:  "non-UTC inputs normalised",
			start: time.Date(2025, 3, 1, 1, 0, 0, 0, time.FixedZone("WIB", 7*3600)),
			end:   date(2025, 3, 15),
			want:  1,
		},
		{
			name:  "offset date counted in UTC month",
			start: date(2025, 1, 10),
			end:   time.Date(2025, 2, 1, 0, 30, 0, 0, time.FixedZone("WIB", 7*3600)),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interest.MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestAccrue(t *testing.T) {
	tests := []struct {
		name         string
		principal    string
		yearlyReturn string
		months       int
		want         string
	}{
		{"six months at five percent", "1000000", "0.05", 6, "25000"},
		{"zero months", "1000000", "0.05", 0, "0"},
		{"zero rate", "500000", "0", 12, "0"},
		{"negative months", "1200", "0.1", -2, "-20"},
		{"fractional result", "100.50", "0.07", 1, "0.58625"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interest.Accrue(decimal.RequireFromString(tt.principal), decimal.RequireFromString(tt.yearlyReturn), tt.months)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestMonthlyReturn(t *testing.T) {
	got := interest.MonthlyReturn(decimal.RequireFromString("0.06"))
	assert.True(t, decimal.RequireFromString("0.005").Equal(got), "got %s", got)
}

func TestApplyWithdrawal(t *testing.T) {
	t.Run("interest added before amount is deducted", func(t *testing.T) {
		w := interest.ApplyWithdrawal(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(500000),
			decimal.RequireFromString("0.05"),
			date(2025, 1, 10),
			date(2025, 7, 2),
		)

		assert.Equal(t, 6, w.Months)
		assert.True(t, decimal.NewFromInt(25000).Equal(w.InterestEarned), "interest %s", w.InterestEarned)
		assert.True(t, decimal.NewFromInt(525000).Equal(w.BalanceAfter), "balance %s", w.BalanceAfter)
	})

	t.Run("overdraft surfaces as negative balance", func(t *testing.T) {
		// 100 held for 12 months at 10% earns 10.
		w := interest.ApplyWithdrawal(
			decimal.NewFromInt(100),
			decimal.NewFromInt(150),
			decimal.RequireFromString("0.1"),
			date(2024, 1, 1),
			date(2025, 1, 1),
		)

		assert.True(t, decimal.NewFromInt(10).Equal(w.InterestEarned))
		assert.True(t, decimal.NewFromInt(-40).Equal(w.BalanceAfter), "balance %s", w.BalanceAfter)
	})

	t.Run("interest rescues withdrawal larger than principal", func(t *testing.T) {
		w := interest.ApplyWithdrawal(
			decimal.NewFromInt(1000),
			decimal.NewFromInt(1050),
			decimal.RequireFromString("0.12"),
			date(2025, 1, 1),
			date(2025, 6, 1),
		)

		assert.True(t, decimal.NewFromInt(50).Equal(w.InterestEarned))
		assert.True(t, w.BalanceAfter.IsZero())
	})
}
