package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportingRepository defines aggregate queries used by reporting.
type ReportingRepository interface {
	// GetProfitTotals sums income and expense amounts for a period. An empty
	// year reports on the current (untagged) period; otherwise only rows
	// archived under that exact label are counted.
	GetProfitTotals(ctx context.Context, year string) (totalIncome, totalExpenses decimal.Decimal, err error)
}
