package services

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
)

// ReportingService defines read-only financial reports.
type ReportingService interface {
	// ProfitDistribution computes a period's net profit and each
	// shareholder's share of it. An empty year reports on the current
	// (untagged) period.
	ProfitDistribution(ctx context.Context, year string) (*domain.ProfitDistribution, error)
}
