package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate reporting
// queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetProfitTotals sums income and expense amounts for a period. Mirrored rows
// already live in incomes and expenses, so these two tables alone cover every
// money movement.
func (r *PgxReportingRepository) GetProfitTotals(ctx context.Context, year string) (decimal.Decimal, decimal.Decimal, error) {
	incomeFilter := `fiscal_year = $1`
	expenseFilter := incomeFilter
	args := []any{year}
	if year == "" {
		incomeFilter = currentPeriodFilter
		expenseFilter = currentPeriodFilter
		args = nil
	}

	query := fmt.Sprintf(`
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE %s),
			(SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE %s);
	`, incomeFilter, expenseFilter)

	var totalIncome, totalExpenses decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&totalIncome, &totalExpenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute profit totals: %w", err)
	}
	return totalIncome, totalExpenses, nil
}
