package repositories

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
)

// FiscalYearReader defines read operations for fiscal year data
type FiscalYearReader interface {
	// FindFiscalYearByID retrieves a fiscal year by its ID.
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)

	// FindFiscalYearByYear retrieves a fiscal year by its unique year label.
	FindFiscalYearByYear(ctx context.Context, year string) (*domain.FiscalYear, error)

	// FindCurrentFiscalYear retrieves the fiscal year flagged current.
	// Returns apperrors.ErrNotFound when no year is current.
	FindCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error)

	// ListFiscalYears retrieves all fiscal years, most recently created first.
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)
}

// FiscalYearWriter defines write operations for fiscal year data
type FiscalYearWriter interface {
	// SaveFiscalYear persists a new fiscal year. When the year is flagged
	// current, the current flag is cleared from any other year inside the
	// same transaction.
	SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error

	// SetCurrentFiscalYear moves the current flag onto the given year,
	// clearing it elsewhere within one transaction. The year's closed flag
	// is re-checked under a row lock; a closed year yields
	// apperrors.ErrValidation.
	SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updatedBy string) error

	// ReopenFiscalYear clears the closed flag and closed timestamp.
	// Archived ledger tags and promotions are deliberately left in place.
	ReopenFiscalYear(ctx context.Context, fiscalYearID string, updatedBy string) error

	// DeleteFiscalYear removes the fiscal year row. Ledger rows are never
	// cascaded; they stay untagged.
	DeleteFiscalYear(ctx context.Context, fiscalYearID string) error

	// CloseFiscalYear runs the year-close sequence in a single transaction:
	// stamp every untagged ledger row and student with year's label, promote
	// all students, persist year as closed, and upsert successor as the new
	// current year. Returns the number of students promoted. The closed flag
	// is re-checked under a row lock at the start of the transaction, so of
	// two racing closes only one promotes; the other gets
	// apperrors.ErrValidation.
	CloseFiscalYear(ctx context.Context, year domain.FiscalYear, successor domain.FiscalYear) (int, error)
}

// FiscalYearRepositoryFacade combines all fiscal-year-related repository interfaces
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearWriter
}

// FiscalYearRepositoryWithTx extends FiscalYearRepositoryFacade with transaction capabilities
type FiscalYearRepositoryWithTx interface {
	FiscalYearRepositoryFacade
	TransactionManager
}
