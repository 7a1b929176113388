package dto

import (
	"time"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateFiscalYearRequest defines the data needed to create a fiscal year.
// The fiscalyear binding rule checks the "YYYY-YYYY" label format.
type CreateFiscalYearRequest struct {
	Year      string `json:"year" binding:"required,fiscalyear"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	IsCurrent bool   `json:"isCurrent"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string     `json:"fiscalYearID"`
	Year         string     `json:"year"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
}

// CloseFiscalYearResponse is returned by the close operation.
type CloseFiscalYearResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	PromotedStudents int    `json:"promotedStudents"`
	NewYear          string `json:"newYear"`
}

// ToFiscalYearResponse converts a domain.FiscalYear to FiscalYearResponse DTO
func ToFiscalYearResponse(fy *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		Year:         fy.Year,
		StartDate:    fy.StartDate.Format(DateLayout),
		EndDate:      fy.EndDate.Format(DateLayout),
		IsCurrent:    fy.IsCurrent,
		IsClosed:     fy.IsClosed,
		ClosedAt:     fy.ClosedAt,
		CreatedAt:    fy.CreatedAt,
		CreatedBy:    fy.CreatedBy,
	}
}

// ToListFiscalYearResponse converts domain fiscal years to response DTOs
func ToListFiscalYearResponse(fys []domain.FiscalYear) []FiscalYearResponse {
	res := make([]FiscalYearResponse, len(fys))
	for i := range fys {
		res[i] = ToFiscalYearResponse(&fys[i])
	}
	return res
}
