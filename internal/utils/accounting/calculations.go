package accounting

import (
	"fmt"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/utils/grades"
	"github.com/shopspring/decimal"
)

// PromoteStudent advances the student's grade label and, when it actually
// changes, rolls the unpaid balance into carried-forward debt and resets the
// payment state for the new period. The second return reports whether the
// student was promoted. Students with unparsable grade labels are left
// untouched; that is not an error.
// This is used in both services and repositories to keep the promotion logic
// in one place.
func PromoteStudent(s domain.Student) (domain.Student, bool) {
	next, ok := grades.AdvanceGrade(s.Grade)
	if !ok {
		return s, false
	}
	s.Grade = next
	return RolloverBalances(s), true
}

// RolloverBalances accumulates the remaining balance into previousYearDebt
// (additive, never overwritten) and makes the full tuition due again.
func RolloverBalances(s domain.Student) domain.Student {
	s.PreviousYearDebt = s.RemainingAmount.Add(s.PreviousYearDebt)
	s.PaidAmount = decimal.Zero
	s.RemainingAmount = s.TuitionFee
	return s
}

// ApplyPayment records a tuition payment against the student's balance,
// maintaining remainingAmount = tuitionFee - paidAmount.
func ApplyPayment(s domain.Student, amount decimal.Decimal) (domain.Student, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, fmt.Errorf("payment amount must be positive, got %s", amount.String())
	}
	s.PaidAmount = s.PaidAmount.Add(amount)
	s.RemainingAmount = s.TuitionFee.Sub(s.PaidAmount)
	return s, nil
}

// SplitProfit distributes a period's net profit across shareholders by their
// share percentage. Amounts are rounded to 2 decimal places.
func SplitProfit(netProfit decimal.Decimal, shareholders []domain.Shareholder) []domain.ShareholderPayout {
	hundred := decimal.NewFromInt(100)
	payouts := make([]domain.ShareholderPayout, len(shareholders))
	for i, sh := range shareholders {
		payouts[i] = domain.ShareholderPayout{
			ShareholderID: sh.ShareholderID,
			FullName:      sh.FullName,
			SharePercent:  sh.SharePercent,
			Amount:        netProfit.Mul(sh.SharePercent).Div(hundred).Round(2),
		}
	}
	return payouts
}
