package dto

import (
	"time"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest defines the data needed to register a staff member.
type CreateStaffRequest struct {
	FullName string          `json:"fullName" binding:"required"`
	Mobile   string          `json:"mobile"`
	Position string          `json:"position" binding:"required"`
	Salary   decimal.Decimal `json:"salary" binding:"required"`
}

// StaffResponse defines the data returned for a staff member.
type StaffResponse struct {
	StaffID   string          `json:"staffID"`
	FullName  string          `json:"fullName"`
	Mobile    string          `json:"mobile"`
	Position  string          `json:"position"`
	Salary    decimal.Decimal `json:"salary"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateShareholderRequest defines the data needed to register a shareholder.
type CreateShareholderRequest struct {
	FullName     string          `json:"fullName" binding:"required"`
	Mobile       string          `json:"mobile"`
	SharePercent decimal.Decimal `json:"sharePercent" binding:"required"`
}

// ShareholderResponse defines the data returned for a shareholder.
type ShareholderResponse struct {
	ShareholderID string          `json:"shareholderID"`
	FullName      string          `json:"fullName"`
	Mobile        string          `json:"mobile"`
	SharePercent  decimal.Decimal `json:"sharePercent"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:   s.StaffID,
		FullName:  s.FullName,
		Mobile:    s.Mobile,
		Position:  s.Position,
		Salary:    s.Salary,
		CreatedAt: s.CreatedAt,
	}
}

// ToListStaffResponse converts domain staff to response DTOs
func ToListStaffResponse(staff []domain.Staff) []StaffResponse {
	res := make([]StaffResponse, len(staff))
	for i := range staff {
		res[i] = ToStaffResponse(&staff[i])
	}
	return res
}

// ToShareholderResponse converts a domain.Shareholder to ShareholderResponse DTO
func ToShareholderResponse(sh *domain.Shareholder) ShareholderResponse {
	return ShareholderResponse{
		ShareholderID: sh.ShareholderID,
		FullName:      sh.FullName,
		Mobile:        sh.Mobile,
		SharePercent:  sh.SharePercent,
		CreatedAt:     sh.CreatedAt,
	}
}

// ToListShareholderResponse converts domain shareholders to response DTOs
func ToListShareholderResponse(shs []domain.Shareholder) []ShareholderResponse {
	res := make([]ShareholderResponse, len(shs))
	for i := range shs {
		res[i] = ToShareholderResponse(&shs[i])
	}
	return res
}
