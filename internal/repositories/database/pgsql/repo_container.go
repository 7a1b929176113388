package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up all pgsql repositories over a shared pool.
// The student repository doubles as the transaction collaborator for the
// year-close and payment flows.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	studentRepo := newPgxStudentRepository(pool)

	return &portsrepo.RepositoryProvider{
		FiscalYearRepo:  newPgxFiscalYearRepository(pool, studentRepo),
		StudentRepo:     studentRepo,
		StaffRepo:       newPgxStaffRepository(pool),
		ShareholderRepo: newPgxShareholderRepository(pool),
		LedgerRepo:      newPgxLedgerRepository(pool, studentRepo),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
