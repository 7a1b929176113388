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
	"github.com/schoolfin/school_finance_app/internal/utils/accounting"
	"github.com/schoolfin/school_finance_app/internal/utils/mapping"
)

type PgxStudentRepository struct {
	BaseRepository
}

// newPgxStudentRepository creates a new repository for student data.
func newPgxStudentRepository(pool *pgxpool.Pool) portsrepo.StudentRepositoryWithTx {
	return &PgxStudentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStudentRepository implements portsrepo.StudentRepositoryWithTx
var _ portsrepo.StudentRepositoryWithTx = (*PgxStudentRepository)(nil)

const studentColumns = `student_id, full_name, mobile, grade, tuition_fee, paid_amount, remaining_amount, previous_year_debt, COALESCE(fiscal_year, ''), created_at, created_by, last_updated_at, last_updated_by`

func scanStudent(row pgx.Row) (models.Student, error) {
	var m models.Student
	err := row.Scan(
		&m.StudentID,
		&m.FullName,
		&m.Mobile,
		&m.Grade,
		&m.TuitionFee,
		&m.PaidAmount,
		&m.RemainingAmount,
		&m.PreviousYearDebt,
		&m.FiscalYear,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectStudents(rows pgx.Rows) ([]domain.Student, error) {
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return mapping.ToDomainStudentSlice(students), nil
}

// FindStudentByID retrieves a student by ID.
func (r *PgxStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`

	m, err := scanStudent(r.Pool.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find student by ID %s: %w", studentID, err)
	}

	s := mapping.ToDomainStudent(m)
	return &s, nil
}

// ListCurrentStudents retrieves students belonging to the live period.
func (r *PgxStudentRepository) ListCurrentStudents(ctx context.Context) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE fiscal_year IS NULL OR fiscal_year = '' ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query current students: %w", err)
	}
	return collectStudents(rows)
}

// ListStudentsByYear retrieves students tagged with an archived year label.
func (r *PgxStudentRepository) ListStudentsByYear(ctx context.Context, year string) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE fiscal_year = $1 ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query students for year %s: %w", year, err)
	}
	return collectStudents(rows)
}

// SaveStudent persists a new student.
func (r *PgxStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)

	query := `
		INSERT INTO students (
			student_id, full_name, mobile, grade, tuition_fee, paid_amount, remaining_amount,
			previous_year_debt, fiscal_year, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StudentID,
		m.FullName,
		m.Mobile,
		m.Grade,
		m.TuitionFee,
		m.PaidAmount,
		m.RemainingAmount,
		m.PreviousYearDebt,
		m.FiscalYear,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("student %s: %w", m.StudentID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert student %s: %w", m.StudentID, err)
	}
	return nil
}

// PromoteAllStudents runs grade promotion over the roster in its own
// transaction. Used by the standalone promotion endpoint; year-close calls
// PromoteStudentsInTx on its larger transaction instead.
func (r *PgxStudentRepository) PromoteAllStudents(ctx context.Context, updatedBy string, now time.Time) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	promoted, err := r.PromoteStudentsInTx(ctx, tx, updatedBy, now)
	if err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return promoted, nil
}

// PromoteStudentsInTx locks the full roster, advances every parsable grade
// and rolls balances forward. Students whose grade label cannot be parsed
// are skipped and counted out of the returned total.
func (r *PgxStudentRepository) PromoteStudentsInTx(ctx context.Context, tx pgx.Tx, updatedBy string, now time.Time) (int, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY student_id FOR UPDATE;`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to lock students for promotion: %w", err)
	}
	students, err := collectStudents(rows)
	if err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	promoted := 0
	for _, s := range students {
		next, ok := accounting.PromoteStudent(s)
		if !ok {
			continue
		}
		batch.Queue(`
			UPDATE students
			SET grade = $2, paid_amount = $3, remaining_amount = $4, previous_year_debt = $5,
			    last_updated_at = $6, last_updated_by = $7
			WHERE student_id = $1;
		`, next.StudentID, next.Grade, next.PaidAmount, next.RemainingAmount, next.PreviousYearDebt, now, updatedBy)
		promoted++
	}

	if batch.Len() == 0 {
		return 0, nil
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return 0, fmt.Errorf("failed to apply student promotion batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close promotion batch: %w", err)
	}

	return promoted, nil
}

// FindStudentByIDForUpdate retrieves a student and locks the row until the
// caller's transaction ends.
func (r *PgxStudentRepository) FindStudentByIDForUpdate(ctx context.Context, tx pgx.Tx, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1 FOR UPDATE;`

	m, err := scanStudent(tx.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find student %s for update: %w", studentID, err)
	}

	s := mapping.ToDomainStudent(m)
	return &s, nil
}

// UpdateStudentBalancesInTx persists the student's balance and grade fields
// inside the caller's transaction.
func (r *PgxStudentRepository) UpdateStudentBalancesInTx(ctx context.Context, tx pgx.Tx, student domain.Student, updatedBy string, now time.Time) error {
	m := mapping.ToModelStudent(student)

	query := `
		UPDATE students
		SET grade = $2, paid_amount = $3, remaining_amount = $4, previous_year_debt = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE student_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.StudentID, m.Grade, m.PaidAmount, m.RemainingAmount, m.PreviousYearDebt, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balances for student %s: %w", m.StudentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
