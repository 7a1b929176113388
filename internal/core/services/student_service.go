package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

type studentService struct {
	BaseService
	repo portsrepo.StudentRepositoryFacade
}

// NewStudentService creates a new student service.
func NewStudentService(repo portsrepo.StudentRepositoryFacade) portssvc.StudentSvcFacade {
	return &studentService{repo: repo}
}

var _ portssvc.StudentSvcFacade = (*studentService)(nil)

// GetStudentByID retrieves a student by ID.
func (s *studentService) GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	student, err := s.repo.FindStudentByID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get student", slog.String("student_id", studentID))
		}
		return nil, err
	}
	return student, nil
}

// ListStudents retrieves the live roster when year is empty, otherwise the
// roster archived under the given year label.
func (s *studentService) ListStudents(ctx context.Context, year string) ([]domain.Student, error) {
	var (
		students []domain.Student
		err      error
	)
	if year == "" {
		students, err = s.repo.ListCurrentStudents(ctx)
	} else {
		students, err = s.repo.ListStudentsByYear(ctx, year)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list students", slog.String("year", year))
		return nil, err
	}
	return students, nil
}

// CreateStudent enrolls a new student in the current period. The full tuition
// is due from the start.
func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest, creatorUserID string) (*domain.Student, error) {
	now := time.Now().UTC()
	student := domain.Student{
		StudentID:        uuid.NewString(),
		FullName:         req.FullName,
		Mobile:           req.Mobile,
		Grade:            req.Grade,
		TuitionFee:       req.TuitionFee,
		PaidAmount:       decimal.Zero,
		RemainingAmount:  req.TuitionFee,
		PreviousYearDebt: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveStudent(ctx, student); err != nil {
		s.LogError(ctx, err, "Failed to create student", slog.String("full_name", req.FullName))
		return nil, err
	}

	s.LogInfo(ctx, "Student enrolled", slog.String("student_id", student.StudentID), slog.String("grade", student.Grade))
	return &student, nil
}

// PromoteGrades runs grade promotion over the whole roster outside of a year
// close.
func (s *studentService) PromoteGrades(ctx context.Context, updaterUserID string) (int, error) {
	promoted, err := s.repo.PromoteAllStudents(ctx, updaterUserID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to promote student grades")
		return 0, err
	}

	s.LogInfo(ctx, "Student grades promoted", slog.Int("promoted_count", promoted))
	return promoted, nil
}
