package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/schoolfin/school_finance_app/internal/utils/academic"
)

type fiscalYearService struct {
	BaseService
	repo portsrepo.FiscalYearRepositoryFacade
}

// NewFiscalYearService creates a new fiscal year service.
func NewFiscalYearService(repo portsrepo.FiscalYearRepositoryFacade) portssvc.FiscalYearSvcFacade {
	return &fiscalYearService{repo: repo}
}

var _ portssvc.FiscalYearSvcFacade = (*fiscalYearService)(nil)

// ListFiscalYears retrieves all fiscal years.
func (s *fiscalYearService) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	years, err := s.repo.ListFiscalYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years")
		return nil, err
	}
	return years, nil
}

// GetCurrentFiscalYear retrieves the year flagged current. Having no current
// year is a legitimate state, reported as a nil year rather than an error.
func (s *fiscalYearService) GetCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	fy, err := s.repo.FindCurrentFiscalYear(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to get current fiscal year")
		return nil, err
	}
	return fy, nil
}

// GetFiscalYearByID retrieves a fiscal year by ID.
func (s *fiscalYearService) GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := s.repo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		}
		return nil, err
	}
	return fy, nil
}

// CreateFiscalYear validates and persists a new fiscal year.
func (s *fiscalYearService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error) {
	if !academic.ValidYearLabel(req.Year) {
		return nil, fmt.Errorf("year label %q must be consecutive years in YYYY-YYYY form: %w", req.Year, apperrors.ErrValidation)
	}

	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, apperrors.ErrValidation)
	}
	endDate, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", req.EndDate, apperrors.ErrValidation)
	}
	if !startDate.Before(endDate) {
		return nil, fmt.Errorf("start date must precede end date: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	fy := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Year:         req.Year,
		StartDate:    startDate,
		EndDate:      endDate,
		IsCurrent:    req.IsCurrent,
		IsClosed:     false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveFiscalYear(ctx, fy); err != nil {
		s.LogError(ctx, err, "Failed to create fiscal year", slog.String("year", req.Year))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year created", slog.String("year", fy.Year), slog.Bool("is_current", fy.IsCurrent))
	return &fy, nil
}

// SetCurrentFiscalYear makes the given year current. A closed year cannot be
// made current again without being reopened first.
func (s *fiscalYearService) SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) (*domain.FiscalYear, error) {
	fy, err := s.repo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy.IsClosed {
		return nil, fmt.Errorf("fiscal year %s is closed and cannot be made current: %w", fy.Year, apperrors.ErrValidation)
	}

	if err := s.repo.SetCurrentFiscalYear(ctx, fiscalYearID, updaterUserID); err != nil {
		s.LogError(ctx, err, "Failed to set current fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	s.LogInfo(ctx, "Current fiscal year changed", slog.String("year", fy.Year))
	return s.repo.FindFiscalYearByID(ctx, fiscalYearID)
}

// DeleteFiscalYear removes an open fiscal year. Closed years carry archive
// tags and are protected from deletion.
func (s *fiscalYearService) DeleteFiscalYear(ctx context.Context, fiscalYearID string) error {
	fy, err := s.repo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return err
	}
	if fy.IsClosed {
		return fmt.Errorf("fiscal year %s is closed and cannot be deleted: %w", fy.Year, apperrors.ErrValidation)
	}

	if err := s.repo.DeleteFiscalYear(ctx, fiscalYearID); err != nil {
		s.LogError(ctx, err, "Failed to delete fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return err
	}

	s.LogInfo(ctx, "Fiscal year deleted", slog.String("year", fy.Year))
	return nil
}

// ReopenFiscalYear clears the closed flag of a closed year. Promotion and
// archive tags applied at close time are not reversed.
func (s *fiscalYearService) ReopenFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) (*domain.FiscalYear, error) {
	fy, err := s.repo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if !fy.IsClosed {
		return nil, fmt.Errorf("fiscal year %s is not closed: %w", fy.Year, apperrors.ErrValidation)
	}

	if err := s.repo.ReopenFiscalYear(ctx, fiscalYearID, updaterUserID); err != nil {
		s.LogError(ctx, err, "Failed to reopen fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year reopened", slog.String("year", fy.Year))
	return s.repo.FindFiscalYearByID(ctx, fiscalYearID)
}

// CloseFiscalYear archives the current period under the year's label,
// promotes the roster and provisions the successor year, all atomically.
func (s *fiscalYearService) CloseFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) (*domain.CloseResult, error) {
	fy, err := s.repo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy.IsClosed {
		return nil, fmt.Errorf("fiscal year %s is already closed: %w", fy.Year, apperrors.ErrValidation)
	}

	successorLabel, start, end, err := academic.SuccessorOf(fy.Year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	// An open year with the successor's label is reused by the close upsert,
	// but a closed one must not be dragged back into service as current.
	existing, err := s.repo.FindFiscalYearByYear(ctx, successorLabel)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up successor year", slog.String("year", successorLabel))
		return nil, err
	}
	if existing != nil && existing.IsClosed {
		return nil, fmt.Errorf("successor year %s is closed and cannot become current: %w", successorLabel, apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	fy.ClosedAt = &now
	fy.LastUpdatedAt = now
	fy.LastUpdatedBy = updaterUserID

	successor := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Year:         successorLabel,
		StartDate:    start,
		EndDate:      end,
		IsCurrent:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	promoted, err := s.repo.CloseFiscalYear(ctx, *fy, successor)
	if err != nil {
		s.LogError(ctx, err, "Failed to close fiscal year", slog.String("year", fy.Year))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year closed",
		slog.String("year", fy.Year),
		slog.String("new_year", successorLabel),
		slog.Int("promoted_students", promoted),
	)
	return &domain.CloseResult{PromotedStudents: promoted, NewYear: successorLabel}, nil
}
