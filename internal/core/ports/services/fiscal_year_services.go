package services

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/dto"
)

// FiscalYearReaderSvc defines read operations for fiscal year data
type FiscalYearReaderSvc interface {
	// ListFiscalYears retrieves all fiscal years, most recently created first.
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)

	// GetCurrentFiscalYear retrieves the current fiscal year, or nil when
	// no year is flagged current.
	GetCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error)

	// GetFiscalYearByID retrieves a fiscal year by ID.
	GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)
}

// FiscalYearWriterSvc defines write operations for fiscal year data
type FiscalYearWriterSvc interface {
	// CreateFiscalYear persists a new fiscal year.
	CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error)

	// SetCurrentFiscalYear makes the given year current. Fails with
	// ErrNotFound for an unknown id and ErrValidation for a closed year.
	SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) (*domain.FiscalYear, error)

	// DeleteFiscalYear removes an open fiscal year. Fails with ErrValidation
	// when the year is closed.
	DeleteFiscalYear(ctx context.Context, fiscalYearID string) error

	// ReopenFiscalYear clears the closed flag of a closed year. It does not
	// reverse promotion or un-tag archived ledger rows.
	ReopenFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) (*domain.FiscalYear, error)

	// CloseFiscalYear archives the period, promotes students and provisions
	// the successor year. Fails with ErrValidation when already closed.
	CloseFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) (*domain.CloseResult, error)
}

// FiscalYearSvcFacade combines all fiscal-year-related service interfaces
type FiscalYearSvcFacade interface {
	FiscalYearReaderSvc
	FiscalYearWriterSvc
}
