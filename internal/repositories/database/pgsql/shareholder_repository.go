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

type PgxShareholderRepository struct {
	BaseRepository
}

// newPgxShareholderRepository creates a new repository for shareholder data.
func newPgxShareholderRepository(pool *pgxpool.Pool) portsrepo.ShareholderRepositoryFacade {
	return &PgxShareholderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShareholderRepositoryFacade = (*PgxShareholderRepository)(nil)

const shareholderColumns = `shareholder_id, full_name, mobile, share_percent, created_at, created_by, last_updated_at, last_updated_by`

func scanShareholder(row pgx.Row) (models.Shareholder, error) {
	var m models.Shareholder
	err := row.Scan(&m.ShareholderID, &m.FullName, &m.Mobile, &m.SharePercent,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// ListShareholders retrieves all shareholders.
func (r *PgxShareholderRepository) ListShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	query := `SELECT ` + shareholderColumns + ` FROM shareholders ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shareholders: %w", err)
	}
	defer rows.Close()

	shareholders := []models.Shareholder{}
	for rows.Next() {
		m, err := scanShareholder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shareholder row: %w", err)
		}
		shareholders = append(shareholders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shareholder rows: %w", err)
	}

	return mapping.ToDomainShareholderSlice(shareholders), nil
}

// SaveShareholder persists a new shareholder.
func (r *PgxShareholderRepository) SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	m := mapping.ToModelShareholder(shareholder)

	query := `
		INSERT INTO shareholders (
			shareholder_id, full_name, mobile, share_percent,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShareholderID, m.FullName, m.Mobile, m.SharePercent,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("shareholder %s: %w", m.ShareholderID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert shareholder %s: %w", m.ShareholderID, err)
	}
	return nil
}
