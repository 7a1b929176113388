package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/core/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StudentRepository ---
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListCurrentStudents(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListStudentsByYear(ctx context.Context, year string) ([]domain.Student, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) PromoteAllStudents(ctx context.Context, updatedBy string, now time.Time) (int, error) {
	args := m.Called(ctx, updatedBy, now)
	return args.Int(0), args.Error(1)
}

func (m *MockStudentRepository) PromoteStudentsInTx(ctx context.Context, tx pgx.Tx, updatedBy string, now time.Time) (int, error) {
	args := m.Called(ctx, tx, updatedBy, now)
	return args.Int(0), args.Error(1)
}

func (m *MockStudentRepository) FindStudentByIDForUpdate(ctx context.Context, tx pgx.Tx, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, tx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) UpdateStudentBalancesInTx(ctx context.Context, tx pgx.Tx, student domain.Student, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, student, updatedBy, now)
	return args.Error(0)
}

// --- Test Suite ---
type StudentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStudentRepository
	service  portssvc.StudentSvcFacade
	ctx      context.Context
}

func (suite *StudentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStudentRepository)
	suite.service = services.NewStudentService(suite.mockRepo)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *StudentServiceTestSuite) TestCreateStudent_FullTuitionDue() {
	creatorUserID := uuid.NewString()
	req := dto.CreateStudentRequest{
		FullName:   "Ahmad Rahimi",
		Grade:      "صنف ٣",
		TuitionFee: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveStudent", suite.ctx, mock.MatchedBy(func(s domain.Student) bool {
		return s.FullName == req.FullName &&
			s.Grade == req.Grade &&
			s.PaidAmount.IsZero() &&
			s.RemainingAmount.Equal(req.TuitionFee) &&
			s.PreviousYearDebt.IsZero() &&
			s.FiscalYear == ""
	})).Return(nil).Once()

	student, err := suite.service.CreateStudent(suite.ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(student)
	suite.Equal(creatorUserID, student.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StudentServiceTestSuite) TestListStudents_EmptyYearIsLiveRoster() {
	roster := []domain.Student{{StudentID: uuid.NewString()}}
	suite.mockRepo.On("ListCurrentStudents", suite.ctx).Return(roster, nil).Once()

	students, err := suite.service.ListStudents(suite.ctx, "")

	suite.Require().NoError(err)
	suite.Equal(roster, students)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListStudentsByYear")
}

func (suite *StudentServiceTestSuite) TestListStudents_YearSelectsArchive() {
	year := "2023-2024"
	archived := []domain.Student{{StudentID: uuid.NewString(), FiscalYear: year}}
	suite.mockRepo.On("ListStudentsByYear", suite.ctx, year).Return(archived, nil).Once()

	students, err := suite.service.ListStudents(suite.ctx, year)

	suite.Require().NoError(err)
	suite.Equal(archived, students)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCurrentStudents")
}

func (suite *StudentServiceTestSuite) TestPromoteGrades() {
	updaterUserID := uuid.NewString()
	suite.mockRepo.On("PromoteAllStudents", suite.ctx, updaterUserID, mock.AnythingOfType("time.Time")).
		Return(17, nil).Once()

	promoted, err := suite.service.PromoteGrades(suite.ctx, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(17, promoted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
