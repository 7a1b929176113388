package services

import (
	"context"
	"log/slog"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	repo            portsrepo.ReportingRepository
	shareholderRepo portsrepo.ShareholderReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository, shareholderRepo portsrepo.ShareholderReader) portssvc.ReportingService {
	return &reportingService{repo: repo, shareholderRepo: shareholderRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// ProfitDistribution computes a period's net profit and each shareholder's
// slice of it. An empty year reports on the current (untagged) period.
func (s *reportingService) ProfitDistribution(ctx context.Context, year string) (*domain.ProfitDistribution, error) {
	totalIncome, totalExpenses, err := s.repo.GetProfitTotals(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute profit totals", slog.String("year", year))
		return nil, err
	}

	shareholders, err := s.shareholderRepo.ListShareholders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shareholders for distribution")
		return nil, err
	}

	netProfit := totalIncome.Sub(totalExpenses)
	return &domain.ProfitDistribution{
		Year:          year,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		Payouts:       accounting.SplitProfit(netProfit, shareholders),
	}, nil
}
