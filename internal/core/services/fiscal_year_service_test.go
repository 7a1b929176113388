package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/core/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FiscalYearRepository ---
type MockFiscalYearRepository struct {
	mock.Mock
}

func (m *MockFiscalYearRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindFiscalYearByYear(ctx context.Context, year string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updatedBy string) error {
	args := m.Called(ctx, fiscalYearID, updatedBy)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) ReopenFiscalYear(ctx context.Context, fiscalYearID string, updatedBy string) error {
	args := m.Called(ctx, fiscalYearID, updatedBy)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) DeleteFiscalYear(ctx context.Context, fiscalYearID string) error {
	args := m.Called(ctx, fiscalYearID)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) CloseFiscalYear(ctx context.Context, year domain.FiscalYear, successor domain.FiscalYear) (int, error) {
	args := m.Called(ctx, year, successor)
	return args.Int(0), args.Error(1)
}

// --- Test Suite ---
type FiscalYearServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFiscalYearRepository
	service  portssvc.FiscalYearSvcFacade
	ctx      context.Context
}

func (suite *FiscalYearServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFiscalYearRepository)
	suite.service = services.NewFiscalYearService(suite.mockRepo)
	suite.ctx = context.Background()
}

func openYear(year string) *domain.FiscalYear {
	return &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Year:         year,
		StartDate:    time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
		IsCurrent:    true,
	}
}

// --- Test Cases ---

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_Success() {
	creatorUserID := uuid.NewString()
	req := dto.CreateFiscalYearRequest{
		Year:      "2024-2025",
		StartDate: "2024-09-01",
		EndDate:   "2025-08-31",
		IsCurrent: true,
	}

	suite.mockRepo.On("SaveFiscalYear", suite.ctx, mock.MatchedBy(func(fy domain.FiscalYear) bool {
		return fy.Year == req.Year && fy.IsCurrent && !fy.IsClosed && fy.CreatedBy == creatorUserID
	})).Return(nil).Once()

	created, err := suite.service.CreateFiscalYear(suite.ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("2024-2025", created.Year)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_RejectsNonConsecutiveLabel() {
	req := dto.CreateFiscalYearRequest{
		Year:      "2024-2026",
		StartDate: "2024-09-01",
		EndDate:   "2025-08-31",
	}

	created, err := suite.service.CreateFiscalYear(suite.ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_RejectsInvertedDates() {
	req := dto.CreateFiscalYearRequest{
		Year:      "2024-2025",
		StartDate: "2025-08-31",
		EndDate:   "2024-09-01",
	}

	_, err := suite.service.CreateFiscalYear(suite.ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FiscalYearServiceTestSuite) TestGetCurrentFiscalYear_NoneIsNotAnError() {
	suite.mockRepo.On("FindCurrentFiscalYear", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()

	fy, err := suite.service.GetCurrentFiscalYear(suite.ctx)

	suite.Require().NoError(err)
	suite.Nil(fy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestSetCurrentFiscalYear_RejectsClosedYear() {
	fy := openYear("2023-2024")
	fy.IsClosed = true
	closedAt := time.Now().UTC()
	fy.ClosedAt = &closedAt

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := suite.service.SetCurrentFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetCurrentFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestDeleteFiscalYear_RejectsClosedYear() {
	fy := openYear("2023-2024")
	fy.IsClosed = true

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()

	err := suite.service.DeleteFiscalYear(suite.ctx, fy.FiscalYearID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestReopenFiscalYear_RejectsOpenYear() {
	fy := openYear("2024-2025")

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := suite.service.ReopenFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReopenFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_Success() {
	fy := openYear("2024-2025")
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockRepo.On("FindFiscalYearByYear", suite.ctx, "2025-2026").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CloseFiscalYear", suite.ctx,
		mock.MatchedBy(func(year domain.FiscalYear) bool {
			return year.FiscalYearID == fy.FiscalYearID && year.ClosedAt != nil && year.LastUpdatedBy == updaterUserID
		}),
		mock.MatchedBy(func(successor domain.FiscalYear) bool {
			return successor.Year == "2025-2026" &&
				successor.IsCurrent &&
				!successor.IsClosed &&
				successor.StartDate.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)) &&
				successor.EndDate.Equal(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC))
		}),
	).Return(42, nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fy.FiscalYearID, updaterUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(42, result.PromotedStudents)
	suite.Equal("2025-2026", result.NewYear)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_RejectsAlreadyClosed() {
	fy := openYear("2023-2024")
	fy.IsClosed = true

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_NotFound() {
	fiscalYearID := uuid.NewString()
	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fiscalYearID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fiscalYearID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_RepoFailureSurfaces() {
	fy := openYear("2024-2025")

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockRepo.On("FindFiscalYearByYear", suite.ctx, "2025-2026").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CloseFiscalYear", suite.ctx, mock.AnythingOfType("domain.FiscalYear"), mock.AnythingOfType("domain.FiscalYear")).
		Return(0, assert.AnError).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(result)
}

// Two racing closes can both pass the service's read of the closed flag. The
// repository re-checks under a row lock inside the transaction; the losing
// call gets a validation error and nothing it queued is kept.
func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_LostRaceSurfacesValidation() {
	fy := openYear("2024-2025")

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockRepo.On("FindFiscalYearByYear", suite.ctx, "2025-2026").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CloseFiscalYear", suite.ctx, mock.AnythingOfType("domain.FiscalYear"), mock.AnythingOfType("domain.FiscalYear")).
		Return(0, fmt.Errorf("fiscal year 2024-2025 is already closed: %w", apperrors.ErrValidation)).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_RejectsClosedSuccessor() {
	fy := openYear("2024-2025")
	successor := openYear("2025-2026")
	successor.IsClosed = true

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockRepo.On("FindFiscalYearByYear", suite.ctx, "2025-2026").Return(successor, nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestCloseFiscalYear_ReusesOpenSuccessor() {
	fy := openYear("2024-2025")
	successor := openYear("2025-2026")
	successor.IsCurrent = false

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockRepo.On("FindFiscalYearByYear", suite.ctx, "2025-2026").Return(successor, nil).Once()
	suite.mockRepo.On("CloseFiscalYear", suite.ctx, mock.AnythingOfType("domain.FiscalYear"), mock.AnythingOfType("domain.FiscalYear")).
		Return(7, nil).Once()

	result, err := suite.service.CloseFiscalYear(suite.ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("2025-2026", result.NewYear)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Same race as the close path: the year can be closed between the service's
// read and the repository write. The write re-checks under the row lock.
func (suite *FiscalYearServiceTestSuite) TestSetCurrentFiscalYear_LostRaceSurfacesValidation() {
	fy := openYear("2024-2025")
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindFiscalYearByID", suite.ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockRepo.On("SetCurrentFiscalYear", suite.ctx, fy.FiscalYearID, updaterUserID).
		Return(fmt.Errorf("fiscal year %s is closed and cannot be made current: %w", fy.FiscalYearID, apperrors.ErrValidation)).Once()

	result, err := suite.service.SetCurrentFiscalYear(suite.ctx, fy.FiscalYearID, updaterUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestFiscalYearServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FiscalYearServiceTestSuite))
}
