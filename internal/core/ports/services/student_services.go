package services

import (
	"context"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/dto"
)

// StudentReaderSvc defines read operations for student data
type StudentReaderSvc interface {
	// GetStudentByID retrieves a student by ID.
	GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error)

	// ListStudents retrieves students for the live period when year is
	// empty, or the archived roster for the given year label.
	ListStudents(ctx context.Context, year string) ([]domain.Student, error)
}

// StudentWriterSvc defines write operations for student data
type StudentWriterSvc interface {
	// CreateStudent enrolls a new student in the current period.
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest, creatorUserID string) (*domain.Student, error)

	// PromoteGrades runs grade promotion over the whole roster outside of a
	// year close, returning the number of students promoted.
	PromoteGrades(ctx context.Context, updaterUserID string) (int, error)
}

// StudentSvcFacade combines all student-related service interfaces
type StudentSvcFacade interface {
	StudentReaderSvc
	StudentWriterSvc
}
