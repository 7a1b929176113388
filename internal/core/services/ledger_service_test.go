package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/core/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListCurrentIncomes(ctx context.Context) ([]domain.Income, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockLedgerRepository) ListIncomesByYear(ctx context.Context, year string) ([]domain.Income, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockLedgerRepository) ListCurrentExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerRepository) ListExpensesByYear(ctx context.Context, year string) ([]domain.Expense, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerRepository) ListCurrentPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockLedgerRepository) ListPaymentsByYear(ctx context.Context, year string) ([]domain.Payment, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockLedgerRepository) ListCurrentSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryPayment), args.Error(1)
}

func (m *MockLedgerRepository) ListSalaryPaymentsByYear(ctx context.Context, year string) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryPayment), args.Error(1)
}

func (m *MockLedgerRepository) ListCurrentFoodPayments(ctx context.Context) ([]domain.FoodPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodPayment), args.Error(1)
}

func (m *MockLedgerRepository) ListFoodPaymentsByYear(ctx context.Context, year string) ([]domain.FoodPayment, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodPayment), args.Error(1)
}

func (m *MockLedgerRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockLedgerRepository) SavePayment(ctx context.Context, payment domain.Payment, mirror domain.Income) error {
	args := m.Called(ctx, payment, mirror)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveSalaryPayment(ctx context.Context, salaryPayment domain.SalaryPayment, mirror domain.Expense) error {
	args := m.Called(ctx, salaryPayment, mirror)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveFoodPayment(ctx context.Context, foodPayment domain.FoodPayment, mirror domain.Income) error {
	args := m.Called(ctx, foodPayment, mirror)
	return args.Error(0)
}

// --- Mock StudentReader ---
type MockStudentReader struct {
	mock.Mock
}

func (m *MockStudentReader) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentReader) ListCurrentStudents(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentReader) ListStudentsByYear(ctx context.Context, year string) ([]domain.Student, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

// --- Mock StaffReader ---
type MockStaffReader struct {
	mock.Mock
}

func (m *MockStaffReader) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffReader) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockLedgerRepository
	mockStudent *MockStudentReader
	mockStaff   *MockStaffReader
	service     portssvc.LedgerSvcFacade
	ctx         context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockStudent = new(MockStudentReader)
	suite.mockStaff = new(MockStaffReader)
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockStudent, suite.mockStaff)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreatePayment_MirrorsIntoIncomes() {
	studentID := uuid.NewString()
	amount := decimal.NewFromInt(250)
	req := dto.CreatePaymentRequest{
		StudentID: studentID,
		Amount:    amount,
		Date:      "2024-11-15",
	}

	suite.mockStudent.On("FindStudentByID", suite.ctx, studentID).
		Return(&domain.Student{StudentID: studentID, FullName: "Ahmad Rahimi"}, nil).Once()

	suite.mockRepo.On("SavePayment", suite.ctx,
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.StudentID == studentID && p.Amount.Equal(amount) && p.FiscalYear == ""
		}),
		mock.MatchedBy(func(mirror domain.Income) bool {
			return mirror.Source == "Tuition" &&
				mirror.Amount.Equal(amount) &&
				mirror.Date.Equal(time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)) &&
				mirror.FiscalYear == ""
		}),
	).Return(nil).Once()

	payment, err := suite.service.CreatePayment(suite.ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStudent.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreatePayment_UnknownStudent() {
	req := dto.CreatePaymentRequest{
		StudentID: uuid.NewString(),
		Amount:    decimal.NewFromInt(100),
		Date:      "2024-11-15",
	}

	suite.mockStudent.On("FindStudentByID", suite.ctx, req.StudentID).
		Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.CreatePayment(suite.ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *LedgerServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	req := dto.CreatePaymentRequest{
		StudentID: uuid.NewString(),
		Amount:    decimal.Zero,
		Date:      "2024-11-15",
	}

	payment, err := suite.service.CreatePayment(suite.ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.mockStudent.AssertNotCalled(suite.T(), "FindStudentByID")
}

func (suite *LedgerServiceTestSuite) TestCreateSalaryPayment_MirrorsIntoExpenses() {
	staffID := uuid.NewString()
	amount := decimal.NewFromInt(1200)
	req := dto.CreateSalaryPaymentRequest{
		StaffID: staffID,
		Amount:  amount,
		Month:   "2024-11",
		Date:    "2024-11-30",
	}

	suite.mockStaff.On("FindStaffByID", suite.ctx, staffID).
		Return(&domain.Staff{StaffID: staffID, FullName: "Marzia Karimi"}, nil).Once()

	suite.mockRepo.On("SaveSalaryPayment", suite.ctx,
		mock.MatchedBy(func(sp domain.SalaryPayment) bool {
			return sp.StaffID == staffID && sp.Amount.Equal(amount) && sp.Month == "2024-11"
		}),
		mock.MatchedBy(func(mirror domain.Expense) bool {
			return mirror.Category == "Salaries" && mirror.Amount.Equal(amount)
		}),
	).Return(nil).Once()

	salaryPayment, err := suite.service.CreateSalaryPayment(suite.ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(salaryPayment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateFoodPayment_MirrorsIntoIncomes() {
	studentID := uuid.NewString()
	amount := decimal.NewFromInt(30)
	req := dto.CreateFoodPaymentRequest{
		StudentID: studentID,
		Amount:    amount,
		Date:      "2024-11-15",
	}

	suite.mockStudent.On("FindStudentByID", suite.ctx, studentID).
		Return(&domain.Student{StudentID: studentID, FullName: "Ahmad Rahimi"}, nil).Once()

	suite.mockRepo.On("SaveFoodPayment", suite.ctx,
		mock.AnythingOfType("domain.FoodPayment"),
		mock.MatchedBy(func(mirror domain.Income) bool {
			return mirror.Source == "Food" && mirror.Amount.Equal(amount)
		}),
	).Return(nil).Once()

	foodPayment, err := suite.service.CreateFoodPayment(suite.ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(foodPayment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListArchived_DispatchesByEntity() {
	year := "2023-2024"
	archived := []domain.Expense{{ExpenseID: uuid.NewString(), FiscalYear: year}}

	suite.mockRepo.On("ListExpensesByYear", suite.ctx, year).Return(archived, nil).Once()

	rows, err := suite.service.ListArchived(suite.ctx, year, domain.ExpenseEntity)

	suite.Require().NoError(err)
	suite.Equal(archived, rows)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListArchived_UnknownEntity() {
	rows, err := suite.service.ListArchived(suite.ctx, "2023-2024", domain.LedgerEntityType("vouchers"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rows)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
