package dto

import (
	"time"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStudentRequest defines the data needed to enroll a student.
type CreateStudentRequest struct {
	FullName   string          `json:"fullName" binding:"required"`
	Mobile     string          `json:"mobile"`
	Grade      string          `json:"grade" binding:"required"`
	TuitionFee decimal.Decimal `json:"tuitionFee" binding:"required"`
}

// StudentResponse defines the data returned for a student.
type StudentResponse struct {
	StudentID        string          `json:"studentID"`
	FullName         string          `json:"fullName"`
	Mobile           string          `json:"mobile"`
	Grade            string          `json:"grade"`
	TuitionFee       decimal.Decimal `json:"tuitionFee"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	PreviousYearDebt decimal.Decimal `json:"previousYearDebt"`
	FiscalYear       string          `json:"fiscalYear,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// PromoteGradesResponse is returned by the manual promotion endpoint.
type PromoteGradesResponse struct {
	PromotedCount int `json:"promotedCount"`
}

// ToStudentResponse converts a domain.Student to StudentResponse DTO
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID:        s.StudentID,
		FullName:         s.FullName,
		Mobile:           s.Mobile,
		Grade:            s.Grade,
		TuitionFee:       s.TuitionFee,
		PaidAmount:       s.PaidAmount,
		RemainingAmount:  s.RemainingAmount,
		PreviousYearDebt: s.PreviousYearDebt,
		FiscalYear:       s.FiscalYear,
		CreatedAt:        s.CreatedAt,
	}
}

// ToListStudentResponse converts domain students to response DTOs
func ToListStudentResponse(students []domain.Student) []StudentResponse {
	res := make([]StudentResponse, len(students))
	for i := range students {
		res[i] = ToStudentResponse(&students[i])
	}
	return res
}
