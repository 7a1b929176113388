package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

type shareholderService struct {
	BaseService
	repo portsrepo.ShareholderRepositoryFacade
}

// NewShareholderService creates a new shareholder service.
func NewShareholderService(repo portsrepo.ShareholderRepositoryFacade) portssvc.ShareholderSvcFacade {
	return &shareholderService{repo: repo}
}

var _ portssvc.ShareholderSvcFacade = (*shareholderService)(nil)

var hundredPercent = decimal.NewFromInt(100)

// CreateShareholder registers a new shareholder. The combined share
// percentage across all shareholders may not exceed 100.
func (s *shareholderService) CreateShareholder(ctx context.Context, req dto.CreateShareholderRequest, creatorUserID string) (*domain.Shareholder, error) {
	if req.SharePercent.IsNegative() || req.SharePercent.IsZero() || req.SharePercent.GreaterThan(hundredPercent) {
		return nil, fmt.Errorf("share percent must be between 0 and 100: %w", apperrors.ErrValidation)
	}

	existing, err := s.repo.ListShareholders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to check existing shareholders")
		return nil, err
	}
	total := req.SharePercent
	for _, sh := range existing {
		total = total.Add(sh.SharePercent)
	}
	if total.GreaterThan(hundredPercent) {
		return nil, fmt.Errorf("combined share percent %s exceeds 100: %w", total.String(), apperrors.ErrValidation)
	}

	shareholder := domain.Shareholder{
		ShareholderID: uuid.NewString(),
		FullName:      req.FullName,
		Mobile:        req.Mobile,
		SharePercent:  req.SharePercent,
		AuditFields:   newAuditFields(creatorUserID),
	}

	if err := s.repo.SaveShareholder(ctx, shareholder); err != nil {
		s.LogError(ctx, err, "Failed to create shareholder", slog.String("full_name", req.FullName))
		return nil, err
	}

	s.LogInfo(ctx, "Shareholder registered",
		slog.String("shareholder_id", shareholder.ShareholderID),
		slog.String("share_percent", req.SharePercent.String()),
	)
	return &shareholder, nil
}

// ListShareholders retrieves all shareholders.
func (s *shareholderService) ListShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	return s.repo.ListShareholders(ctx)
}
