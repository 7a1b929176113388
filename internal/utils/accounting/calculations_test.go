package accounting_test

import (
	"testing"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRolloverBalances_DebtAccumulates(t *testing.T) {
	s := domain.Student{
		TuitionFee:       d("1000"),
		PaidAmount:       d("800"),
		RemainingAmount:  d("200"),
		PreviousYearDebt: d("600"),
	}

	rolled := accounting.RolloverBalances(s)

	// Debt is additive across closings, never overwritten.
	assert.True(t, rolled.PreviousYearDebt.Equal(d("800")), "got %s", rolled.PreviousYearDebt)
	assert.True(t, rolled.PaidAmount.IsZero())
	assert.True(t, rolled.RemainingAmount.Equal(d("1000")))
}

func TestPromoteStudent_AdvancesGradeAndRolls(t *testing.T) {
	s := domain.Student{
		Grade:           "Grade 4",
		TuitionFee:      d("500"),
		PaidAmount:      d("500"),
		RemainingAmount: d("0"),
	}

	promoted, ok := accounting.PromoteStudent(s)
	require.True(t, ok)

	assert.Equal(t, "Grade 5", promoted.Grade)
	assert.True(t, promoted.PaidAmount.IsZero())
	assert.True(t, promoted.RemainingAmount.Equal(d("500")))
	assert.True(t, promoted.PreviousYearDebt.IsZero())
}

func TestPromoteStudent_UnparsableGradeUntouched(t *testing.T) {
	s := domain.Student{
		Grade:           "Kindergarten",
		TuitionFee:      d("500"),
		PaidAmount:      d("100"),
		RemainingAmount: d("400"),
	}

	unchanged, ok := accounting.PromoteStudent(s)
	assert.False(t, ok)
	assert.Equal(t, s, unchanged)
}

func TestApplyPayment(t *testing.T) {
	s := domain.Student{
		TuitionFee:      d("1000"),
		PaidAmount:      d("300"),
		RemainingAmount: d("700"),
	}

	updated, err := accounting.ApplyPayment(s, d("250"))
	require.NoError(t, err)

	assert.True(t, updated.PaidAmount.Equal(d("550")))
	assert.True(t, updated.RemainingAmount.Equal(d("450")))
}

func TestApplyPayment_RejectsNonPositive(t *testing.T) {
	s := domain.Student{TuitionFee: d("1000")}

	_, err := accounting.ApplyPayment(s, d("0"))
	assert.Error(t, err)

	_, err = accounting.ApplyPayment(s, d("-5"))
	assert.Error(t, err)
}

func TestSplitProfit(t *testing.T) {
	shareholders := []domain.Shareholder{
		{ShareholderID: "a", FullName: "A", SharePercent: d("60")},
		{ShareholderID: "b", FullName: "B", SharePercent: d("40")},
	}

	payouts := accounting.SplitProfit(d("1000.50"), shareholders)
	require.Len(t, payouts, 2)

	assert.True(t, payouts[0].Amount.Equal(d("600.30")), "got %s", payouts[0].Amount)
	assert.True(t, payouts[1].Amount.Equal(d("400.20")), "got %s", payouts[1].Amount)
}

func TestSplitProfit_NegativeProfit(t *testing.T) {
	shareholders := []domain.Shareholder{
		{ShareholderID: "a", SharePercent: d("50")},
	}

	payouts := accounting.SplitProfit(d("-200"), shareholders)
	require.Len(t, payouts, 1)
	assert.True(t, payouts[0].Amount.Equal(d("-100")))
}
