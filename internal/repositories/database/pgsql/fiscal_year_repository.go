package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	"github.com/schoolfin/school_finance_app/internal/models"
	"github.com/schoolfin/school_finance_app/internal/utils/mapping"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// archiveTables are the ledger tables stamped with the closing year's label.
// Students are tagged in the same pass so no record is left ambiguously
// attributed.
var archiveTables = []string{"incomes", "expenses", "payments", "salary_payments", "food_payments", "students"}

type PgxFiscalYearRepository struct {
	BaseRepository
	studentRepo portsrepo.StudentTxCollaborator
}

// newPgxFiscalYearRepository creates a new repository for fiscal year data.
// The student collaborator runs grade promotion inside the close transaction.
func newPgxFiscalYearRepository(pool *pgxpool.Pool, studentRepo portsrepo.StudentTxCollaborator) portsrepo.FiscalYearRepositoryWithTx {
	return &PgxFiscalYearRepository{
		BaseRepository: BaseRepository{Pool: pool},
		studentRepo:    studentRepo,
	}
}

// Ensure PgxFiscalYearRepository implements portsrepo.FiscalYearRepositoryWithTx
var _ portsrepo.FiscalYearRepositoryWithTx = (*PgxFiscalYearRepository)(nil)

const fiscalYearColumns = `fiscal_year_id, year, start_date, end_date, is_current, is_closed, closed_at, created_at, created_by, last_updated_at, last_updated_by`

func scanFiscalYear(row pgx.Row) (models.FiscalYear, error) {
	var m models.FiscalYear
	err := row.Scan(
		&m.FiscalYearID,
		&m.Year,
		&m.StartDate,
		&m.EndDate,
		&m.IsCurrent,
		&m.IsClosed,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindFiscalYearByID retrieves a fiscal year by its ID.
func (r *PgxFiscalYearRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE fiscal_year_id = $1;`

	m, err := scanFiscalYear(r.Pool.QueryRow(ctx, query, fiscalYearID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal year by ID %s: %w", fiscalYearID, err)
	}

	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

// FindFiscalYearByYear retrieves a fiscal year by its unique year label.
func (r *PgxFiscalYearRepository) FindFiscalYearByYear(ctx context.Context, year string) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE year = $1;`

	m, err := scanFiscalYear(r.Pool.QueryRow(ctx, query, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal year %s: %w", year, err)
	}

	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

// FindCurrentFiscalYear retrieves the single year flagged current.
func (r *PgxFiscalYearRepository) FindCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE is_current = TRUE;`

	m, err := scanFiscalYear(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find current fiscal year: %w", err)
	}

	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

// ListFiscalYears retrieves all fiscal years, most recently created first.
func (r *PgxFiscalYearRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal years: %w", err)
	}
	defer rows.Close()

	fiscalYears := []models.FiscalYear{}
	for rows.Next() {
		m, err := scanFiscalYear(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal year row: %w", err)
		}
		fiscalYears = append(fiscalYears, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal year rows: %w", err)
	}

	return mapping.ToDomainFiscalYearSlice(fiscalYears), nil
}

// SaveFiscalYear persists a new fiscal year. When the year is flagged current
// the current flag is first cleared from any other year, inside the same
// transaction, so at most one current year can exist.
func (r *PgxFiscalYearRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(year)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if m.IsCurrent {
		if err := clearCurrentFlag(ctx, tx, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO fiscal_years (
			fiscal_year_id, year, start_date, end_date, is_current, is_closed, closed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.FiscalYearID,
		m.Year,
		m.StartDate,
		m.EndDate,
		m.IsCurrent,
		m.IsClosed,
		m.ClosedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("fiscal year %s: %w", m.Year, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert fiscal year %s: %w", m.Year, err)
	}

	return r.Commit(ctx, tx)
}

// SetCurrentFiscalYear moves the current flag onto the given year inside one
// transaction.
func (r *PgxFiscalYearRepository) SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// The service's closed-year check runs on a plain read. Re-check under
	// the row lock so a close racing this call cannot leave a closed year
	// current.
	isClosed, err := lockFiscalYearRow(ctx, tx, fiscalYearID)
	if err != nil {
		return err
	}
	if isClosed {
		return fmt.Errorf("fiscal year %s is closed and cannot be made current: %w", fiscalYearID, apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := clearCurrentFlag(ctx, tx, updatedBy, now); err != nil {
		return err
	}

	query := `
		UPDATE fiscal_years
		SET is_current = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1 AND is_closed = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, query, fiscalYearID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set current fiscal year %s: %w", fiscalYearID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ReopenFiscalYear clears the closed flag and timestamp. Ledger tags and
// promotions applied at close time stay in place.
func (r *PgxFiscalYearRepository) ReopenFiscalYear(ctx context.Context, fiscalYearID string, updatedBy string) error {
	query := `
		UPDATE fiscal_years
		SET is_closed = FALSE, closed_at = NULL, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, fiscalYearID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to reopen fiscal year %s: %w", fiscalYearID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFiscalYear removes the fiscal year row. Ledger rows are left
// untouched (and untagged).
func (r *PgxFiscalYearRepository) DeleteFiscalYear(ctx context.Context, fiscalYearID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM fiscal_years WHERE fiscal_year_id = $1;`, fiscalYearID)
	if err != nil {
		return fmt.Errorf("failed to delete fiscal year %s: %w", fiscalYearID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CloseFiscalYear runs the whole year-close sequence in one transaction:
//  1. stamp every untagged row in the ledger tables and students with the
//     closing year's label,
//  2. promote all students (grade advance + balance rollover),
//  3. mark the year closed and not current,
//  4. upsert the successor year as the new current year.
//
// Tagging runs before promotion so the archived student tags attach to the
// rows holding end-of-year balances. Any failure rolls back the entire close.
func (r *PgxFiscalYearRepository) CloseFiscalYear(ctx context.Context, year domain.FiscalYear, successor domain.FiscalYear) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	now := year.LastUpdatedAt
	userID := year.LastUpdatedBy

	// The service's closed-year check runs on a plain read, so two racing
	// closes could both pass it. Re-check under the row lock before doing
	// any work; the loser sees the committed close and stops here.
	isClosed, err := lockFiscalYearRow(ctx, tx, year.FiscalYearID)
	if err != nil {
		return 0, err
	}
	if isClosed {
		return 0, fmt.Errorf("fiscal year %s is already closed: %w", year.Year, apperrors.ErrValidation)
	}

	// 1. Archive tagging. The predicate skips already-tagged rows, which
	// makes this step idempotent under a retried close.
	for _, table := range archiveTables {
		tagQuery := fmt.Sprintf(`
			UPDATE %s
			SET fiscal_year = $1, last_updated_at = $2, last_updated_by = $3
			WHERE fiscal_year IS NULL OR fiscal_year = '';
		`, table)
		if _, err := tx.Exec(ctx, tagQuery, year.Year, now, userID); err != nil {
			return 0, fmt.Errorf("failed to archive %s for year %s: %w", table, year.Year, err)
		}
	}

	// 2. Grade promotion over the full roster.
	promoted, err := r.studentRepo.PromoteStudentsInTx(ctx, tx, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to promote students for year %s: %w", year.Year, err)
	}

	// 3. Close the year.
	closeQuery := `
		UPDATE fiscal_years
		SET is_closed = TRUE, is_current = FALSE, closed_at = $2, last_updated_at = $3, last_updated_by = $4
		WHERE fiscal_year_id = $1 AND is_closed = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, closeQuery, year.FiscalYearID, year.ClosedAt, now, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to close fiscal year %s: %w", year.Year, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrNotFound
	}

	// 4. Provision the successor as current. The upsert reuses a
	// pre-existing year with the same label instead of duplicating it.
	if err := clearCurrentFlag(ctx, tx, userID, now); err != nil {
		return 0, err
	}

	sm := mapping.ToModelFiscalYear(successor)
	successorQuery := `
		INSERT INTO fiscal_years (
			fiscal_year_id, year, start_date, end_date, is_current, is_closed, closed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, TRUE, FALSE, NULL, $5, $6, $7, $8)
		ON CONFLICT (year) DO UPDATE
		SET is_current = TRUE, last_updated_at = $7, last_updated_by = $8;
	`
	_, err = tx.Exec(ctx, successorQuery,
		sm.FiscalYearID,
		sm.Year,
		sm.StartDate,
		sm.EndDate,
		sm.CreatedAt,
		sm.CreatedBy,
		sm.LastUpdatedAt,
		sm.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to provision successor year %s: %w", sm.Year, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return promoted, nil
}

// lockFiscalYearRow takes a row lock on the year for the duration of tx and
// returns its closed flag, so the caller's state checks hold until commit.
func lockFiscalYearRow(ctx context.Context, tx pgx.Tx, fiscalYearID string) (bool, error) {
	var isClosed bool
	err := tx.QueryRow(ctx, `SELECT is_closed FROM fiscal_years WHERE fiscal_year_id = $1 FOR UPDATE;`, fiscalYearID).Scan(&isClosed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrNotFound
		}
		return false, fmt.Errorf("failed to lock fiscal year %s: %w", fiscalYearID, err)
	}
	return isClosed, nil
}

// clearCurrentFlag removes the current flag from whichever year holds it.
// Scoped to the caller's transaction so concurrent writers cannot leave two
// current years.
func clearCurrentFlag(ctx context.Context, tx pgx.Tx, updatedBy string, now time.Time) error {
	query := `
		UPDATE fiscal_years
		SET is_current = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_current = TRUE;
	`
	if _, err := tx.Exec(ctx, query, now, updatedBy); err != nil {
		return fmt.Errorf("failed to clear current fiscal year flag: %w", err)
	}
	return nil
}
