package dto

import (
	"time"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income entry.
type CreateIncomeRequest struct {
	Source      string          `json:"source" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateExpenseRequest defines the data needed to record an expense entry.
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreatePaymentRequest defines the data needed to record a tuition payment.
type CreatePaymentRequest struct {
	StudentID string          `json:"studentID" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
	Notes     string          `json:"notes"`
}

// CreateSalaryPaymentRequest defines the data needed to record a salary payment.
type CreateSalaryPaymentRequest struct {
	StaffID string          `json:"staffID" binding:"required,uuid"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Month   string          `json:"month" binding:"required,datetime=2006-01"`
	Date    string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateFoodPaymentRequest defines the data needed to record a food payment.
type CreateFoodPaymentRequest struct {
	StudentID string          `json:"studentID" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// IncomeResponse defines the data returned for an income entry.
type IncomeResponse struct {
	IncomeID    string          `json:"incomeID"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	FiscalYear  string          `json:"fiscalYear,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExpenseResponse defines the data returned for an expense entry.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	FiscalYear  string          `json:"fiscalYear,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PaymentResponse defines the data returned for a tuition payment.
type PaymentResponse struct {
	PaymentID  string          `json:"paymentID"`
	StudentID  string          `json:"studentID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	FiscalYear string          `json:"fiscalYear,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SalaryPaymentResponse defines the data returned for a salary payment.
type SalaryPaymentResponse struct {
	SalaryPaymentID string          `json:"salaryPaymentID"`
	StaffID         string          `json:"staffID"`
	Amount          decimal.Decimal `json:"amount"`
	Month           string          `json:"month"`
	Date            string          `json:"date"`
	FiscalYear      string          `json:"fiscalYear,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// FoodPaymentResponse defines the data returned for a food payment.
type FoodPaymentResponse struct {
	FoodPaymentID string          `json:"foodPaymentID"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	FiscalYear    string          `json:"fiscalYear,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:    in.IncomeID,
		Source:      in.Source,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date.Format(DateLayout),
		FiscalYear:  in.FiscalYear,
		CreatedAt:   in.CreatedAt,
	}
}

// ToListIncomeResponse converts domain incomes to response DTOs
func ToListIncomeResponse(ins []domain.Income) []IncomeResponse {
	res := make([]IncomeResponse, len(ins))
	for i := range ins {
		res[i] = ToIncomeResponse(&ins[i])
	}
	return res
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(ex *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   ex.ExpenseID,
		Category:    ex.Category,
		Description: ex.Description,
		Amount:      ex.Amount,
		Date:        ex.Date.Format(DateLayout),
		FiscalYear:  ex.FiscalYear,
		CreatedAt:   ex.CreatedAt,
	}
}

// ToListExpenseResponse converts domain expenses to response DTOs
func ToListExpenseResponse(exs []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(exs))
	for i := range exs {
		res[i] = ToExpenseResponse(&exs[i])
	}
	return res
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		StudentID:  p.StudentID,
		Amount:     p.Amount,
		Date:       p.Date.Format(DateLayout),
		Notes:      p.Notes,
		FiscalYear: p.FiscalYear,
		CreatedAt:  p.CreatedAt,
	}
}

// ToListPaymentResponse converts domain payments to response DTOs
func ToListPaymentResponse(ps []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(ps))
	for i := range ps {
		res[i] = ToPaymentResponse(&ps[i])
	}
	return res
}

// ToSalaryPaymentResponse converts a domain.SalaryPayment to SalaryPaymentResponse DTO
func ToSalaryPaymentResponse(sp *domain.SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		SalaryPaymentID: sp.SalaryPaymentID,
		StaffID:         sp.StaffID,
		Amount:          sp.Amount,
		Month:           sp.Month,
		Date:            sp.Date.Format(DateLayout),
		FiscalYear:      sp.FiscalYear,
		CreatedAt:       sp.CreatedAt,
	}
}

// ToListSalaryPaymentResponse converts domain salary payments to response DTOs
func ToListSalaryPaymentResponse(sps []domain.SalaryPayment) []SalaryPaymentResponse {
	res := make([]SalaryPaymentResponse, len(sps))
	for i := range sps {
		res[i] = ToSalaryPaymentResponse(&sps[i])
	}
	return res
}

// ToFoodPaymentResponse converts a domain.FoodPayment to FoodPaymentResponse DTO
func ToFoodPaymentResponse(fp *domain.FoodPayment) FoodPaymentResponse {
	return FoodPaymentResponse{
		FoodPaymentID: fp.FoodPaymentID,
		StudentID:     fp.StudentID,
		Amount:        fp.Amount,
		Date:          fp.Date.Format(DateLayout),
		FiscalYear:    fp.FiscalYear,
		CreatedAt:     fp.CreatedAt,
	}
}

// ToListFoodPaymentResponse converts domain food payments to response DTOs
func ToListFoodPaymentResponse(fps []domain.FoodPayment) []FoodPaymentResponse {
	res := make([]FoodPaymentResponse, len(fps))
	for i := range fps {
		res[i] = ToFoodPaymentResponse(&fps[i])
	}
	return res
}
