package domain

import "github.com/shopspring/decimal"

// Student represents an enrolled student and their tuition balance for the
// current period. The same row survives year-close: it is tagged with the
// closing year's label and mutated by grade promotion, never copied.
type Student struct {
	StudentID        string          `json:"studentID"` // Primary Key (UUID)
	FullName         string          `json:"fullName"`
	Mobile           string          `json:"mobile"`
	Grade            string          `json:"grade"` // Free text; may use ASCII, Arabic-Indic or Extended Arabic-Indic numerals, or ordinal words
	TuitionFee       decimal.Decimal `json:"tuitionFee"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`  // tuitionFee - paidAmount
	PreviousYearDebt decimal.Decimal `json:"previousYearDebt"` // Carried-forward debt, accumulated across closings
	FiscalYear       string          `json:"fiscalYear"`       // Empty means current period
	AuditFields
}
