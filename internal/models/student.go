package models

import "github.com/shopspring/decimal"

// Student maps to the students table. FiscalYear is stored as nullable text;
// empty means the row belongs to the live accounting period.
type Student struct {
	StudentID        string          `json:"studentID"`
	FullName         string          `json:"fullName"`
	Mobile           string          `json:"mobile"`
	Grade            string          `json:"grade"`
	TuitionFee       decimal.Decimal `json:"tuitionFee"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	PreviousYearDebt decimal.Decimal `json:"previousYearDebt"`
	FiscalYear       string          `json:"fiscalYear"`
	AuditFields
}
