package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income maps to the incomes table.
type Income struct {
	IncomeID    string          `json:"incomeID"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	FiscalYear  string          `json:"fiscalYear"`
	AuditFields
}

// Expense maps to the expenses table.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	FiscalYear  string          `json:"fiscalYear"`
	AuditFields
}

// Payment maps to the payments table.
type Payment struct {
	PaymentID  string          `json:"paymentID"`
	StudentID  string          `json:"studentID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes"`
	FiscalYear string          `json:"fiscalYear"`
	AuditFields
}

// SalaryPayment maps to the salary_payments table.
type SalaryPayment struct {
	SalaryPaymentID string          `json:"salaryPaymentID"`
	StaffID         string          `json:"staffID"`
	Amount          decimal.Decimal `json:"amount"`
	Month           string          `json:"month"`
	Date            time.Time       `json:"date"`
	FiscalYear      string          `json:"fiscalYear"`
	AuditFields
}

// FoodPayment maps to the food_payments table.
type FoodPayment struct {
	FoodPaymentID string          `json:"foodPaymentID"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	FiscalYear    string          `json:"fiscalYear"`
	AuditFields
}
