package repositories

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
)

// StaffReader defines read operations for staff data
type StaffReader interface {
	// FindStaffByID retrieves a staff member by ID.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)

	// ListStaff retrieves all staff members.
	ListStaff(ctx context.Context) ([]domain.Staff, error)
}

// StaffWriter defines write operations for staff data
type StaffWriter interface {
	// SaveStaff persists a new staff member.
	SaveStaff(ctx context.Context, staff domain.Staff) error
}

// StaffRepositoryFacade combines all staff-related repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}

// ShareholderReader defines read operations for shareholder data
type ShareholderReader interface {
	// ListShareholders retrieves all shareholders.
	ListShareholders(ctx context.Context) ([]domain.Shareholder, error)
}

// ShareholderWriter defines write operations for shareholder data
type ShareholderWriter interface {
	// SaveShareholder persists a new shareholder.
	SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error
}

// ShareholderRepositoryFacade combines all shareholder-related repository interfaces
type ShareholderRepositoryFacade interface {
	ShareholderReader
	ShareholderWriter
}
