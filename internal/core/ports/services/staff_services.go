package services

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/dto"
)

// StaffSvcFacade defines operations for staff data
type StaffSvcFacade interface {
	// CreateStaff registers a new staff member.
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest, creatorUserID string) (*domain.Staff, error)

	// ListStaff retrieves all staff members.
	ListStaff(ctx context.Context) ([]domain.Staff, error)
}

// ShareholderSvcFacade defines operations for shareholder data
type ShareholderSvcFacade interface {
	// CreateShareholder registers a new shareholder.
	CreateShareholder(ctx context.Context, req dto.CreateShareholderRequest, creatorUserID string) (*domain.Shareholder, error)

	// ListShareholders retrieves all shareholders.
	ListShareholders(ctx context.Context) ([]domain.Shareholder, error)
}
