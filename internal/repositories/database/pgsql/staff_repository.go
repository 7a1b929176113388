package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	"github.com/schoolfin/school_finance_app/internal/models"
	"github.com/schoolfin/school_finance_app/internal/utils/mapping"
)

type PgxStaffRepository struct {
	BaseRepository
}

// newPgxStaffRepository creates a new repository for staff data.
func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, full_name, mobile, position, salary, created_at, created_by, last_updated_at, last_updated_by`

func scanStaff(row pgx.Row) (models.Staff, error) {
	var m models.Staff
	err := row.Scan(&m.StaffID, &m.FullName, &m.Mobile, &m.Position, &m.Salary,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// FindStaffByID retrieves a staff member by ID.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1;`

	m, err := scanStaff(r.Pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff member by ID %s: %w", staffID, err)
	}

	s := mapping.ToDomainStaff(m)
	return &s, nil
}

// ListStaff retrieves all staff members.
func (r *PgxStaffRepository) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	staff := []models.Staff{}
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return mapping.ToDomainStaffSlice(staff), nil
}

// SaveStaff persists a new staff member.
func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	m := mapping.ToModelStaff(staff)

	query := `
		INSERT INTO staff (
			staff_id, full_name, mobile, position, salary,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StaffID, m.FullName, m.Mobile, m.Position, m.Salary,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("staff member %s: %w", m.StaffID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert staff member %s: %w", m.StaffID, err)
	}
	return nil
}
