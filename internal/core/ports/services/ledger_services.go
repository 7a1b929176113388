package services

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/dto"
)

// LedgerReaderSvc defines the current and archived read views over the
// ledger tables.
type LedgerReaderSvc interface {
	// ListCurrentIncomes retrieves untagged income rows.
	ListCurrentIncomes(ctx context.Context) ([]domain.Income, error)

	// ListCurrentExpenses retrieves untagged expense rows.
	ListCurrentExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListCurrentPayments retrieves untagged tuition payments.
	ListCurrentPayments(ctx context.Context) ([]domain.Payment, error)

	// ListCurrentSalaryPayments retrieves untagged salary payments.
	ListCurrentSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error)

	// ListCurrentFoodPayments retrieves untagged food payments.
	ListCurrentFoodPayments(ctx context.Context) ([]domain.FoodPayment, error)

	// ListArchived retrieves the archived rows of one ledger table for an
	// exact year label. The result slice type depends on entityType.
	ListArchived(ctx context.Context, year string, entityType domain.LedgerEntityType) (any, error)
}

// LedgerWriterSvc defines write operations for ledger records, including the
// write-time mirror hooks.
type LedgerWriterSvc interface {
	// CreateIncome records a standalone income entry.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error)

	// CreateExpense records a standalone expense entry.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// CreatePayment records a tuition payment, updates the student balance
	// and mirrors the amount into incomes.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// CreateSalaryPayment records a salary payment and mirrors it into expenses.
	CreateSalaryPayment(ctx context.Context, req dto.CreateSalaryPaymentRequest, creatorUserID string) (*domain.SalaryPayment, error)

	// CreateFoodPayment records a food payment and mirrors it into incomes.
	CreateFoodPayment(ctx context.Context, req dto.CreateFoodPaymentRequest, creatorUserID string) (*domain.FoodPayment, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
