package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntityType identifies one of the archivable ledger tables.
type LedgerEntityType string

const (
	IncomeEntity        LedgerEntityType = "income"
	ExpenseEntity       LedgerEntityType = "expenses"
	PaymentEntity       LedgerEntityType = "payments"
	SalaryPaymentEntity LedgerEntityType = "salary-payments"
	FoodPaymentEntity   LedgerEntityType = "food-payments"
)

// Income is a revenue entry. Mirrored income rows are created automatically
// when tuition and food payments are recorded.
type Income struct {
	IncomeID    string          `json:"incomeID"` // Primary Key (UUID)
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	FiscalYear  string          `json:"fiscalYear"` // Empty means current period
	AuditFields
}

// Expense is a cost entry. Mirrored expense rows are created automatically
// when salary payments are recorded.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	FiscalYear  string          `json:"fiscalYear"`
	AuditFields
}

// Payment is a tuition payment made by a student.
type Payment struct {
	PaymentID  string          `json:"paymentID"` // Primary Key (UUID)
	StudentID  string          `json:"studentID"` // FK -> Student.studentID
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes"`
	FiscalYear string          `json:"fiscalYear"`
	AuditFields
}

// SalaryPayment is a salary disbursement to a staff member.
type SalaryPayment struct {
	SalaryPaymentID string          `json:"salaryPaymentID"` // Primary Key (UUID)
	StaffID         string          `json:"staffID"`         // FK -> Staff.staffID
	Amount          decimal.Decimal `json:"amount"`
	Month           string          `json:"month"` // e.g. "2024-11"
	Date            time.Time       `json:"date"`
	FiscalYear      string          `json:"fiscalYear"`
	AuditFields
}

// FoodPayment is a food-service payment made by a student.
type FoodPayment struct {
	FoodPaymentID string          `json:"foodPaymentID"` // Primary Key (UUID)
	StudentID     string          `json:"studentID"`     // FK -> Student.studentID
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	FiscalYear    string          `json:"fiscalYear"`
	AuditFields
}

// ValidLedgerEntityType reports whether s names an archivable ledger table.
func ValidLedgerEntityType(s string) bool {
	switch LedgerEntityType(s) {
	case IncomeEntity, ExpenseEntity, PaymentEntity, SalaryPaymentEntity, FoodPaymentEntity:
		return true
	}
	return false
}
