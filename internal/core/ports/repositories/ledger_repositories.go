package repositories

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
)

// LedgerReader defines filtered read views over the five ledger tables.
// The "current" variants return rows whose fiscal year tag is null or empty;
// the "by year" variants return the archived rows for an exact label.
type LedgerReader interface {
	ListCurrentIncomes(ctx context.Context) ([]domain.Income, error)
	ListIncomesByYear(ctx context.Context, year string) ([]domain.Income, error)

	ListCurrentExpenses(ctx context.Context) ([]domain.Expense, error)
	ListExpensesByYear(ctx context.Context, year string) ([]domain.Expense, error)

	ListCurrentPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsByYear(ctx context.Context, year string) ([]domain.Payment, error)

	ListCurrentSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error)
	ListSalaryPaymentsByYear(ctx context.Context, year string) ([]domain.SalaryPayment, error)

	ListCurrentFoodPayments(ctx context.Context) ([]domain.FoodPayment, error)
	ListFoodPaymentsByYear(ctx context.Context, year string) ([]domain.FoodPayment, error)
}

// LedgerWriter defines write operations for ledger records. The payment
// variants persist the record together with its write-time mirror row and
// the student balance update in one transaction.
type LedgerWriter interface {
	// SaveIncome persists a standalone income entry.
	SaveIncome(ctx context.Context, income domain.Income) error

	// SaveExpense persists a standalone expense entry.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// SavePayment persists a tuition payment, applies it to the student's
	// balance (row locked for update) and inserts the mirrored income.
	SavePayment(ctx context.Context, payment domain.Payment, mirror domain.Income) error

	// SaveSalaryPayment persists a salary payment and its mirrored expense.
	SaveSalaryPayment(ctx context.Context, salaryPayment domain.SalaryPayment, mirror domain.Expense) error

	// SaveFoodPayment persists a food payment and its mirrored income.
	SaveFoodPayment(ctx context.Context, foodPayment domain.FoodPayment, mirror domain.Income) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
