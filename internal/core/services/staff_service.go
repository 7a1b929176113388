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
)

type staffService struct {
	BaseService
	repo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new staff service.
func NewStaffService(repo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{repo: repo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

// CreateStaff registers a new staff member.
func (s *staffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, creatorUserID string) (*domain.Staff, error) {
	if req.Salary.IsNegative() {
		return nil, fmt.Errorf("salary must not be negative: %w", apperrors.ErrValidation)
	}

	staff := domain.Staff{
		StaffID:     uuid.NewString(),
		FullName:    req.FullName,
		Mobile:      req.Mobile,
		Position:    req.Position,
		Salary:      req.Salary,
		AuditFields: newAuditFields(creatorUserID),
	}

	if err := s.repo.SaveStaff(ctx, staff); err != nil {
		s.LogError(ctx, err, "Failed to create staff member", slog.String("full_name", req.FullName))
		return nil, err
	}

	s.LogInfo(ctx, "Staff member registered", slog.String("staff_id", staff.StaffID))
	return &staff, nil
}

// ListStaff retrieves all staff members.
func (s *staffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.repo.ListStaff(ctx)
}
