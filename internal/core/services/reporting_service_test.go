package services_test

import (
	"context"
	"testing"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetProfitTotals(ctx context.Context, year string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock ShareholderReader ---
type MockShareholderReader struct {
	mock.Mock
}

func (m *MockShareholderReader) ListShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shareholder), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockReportingRepository
	mockShareholders *MockShareholderReader
	service          portssvc.ReportingService
	ctx              context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.mockShareholders = new(MockShareholderReader)
	suite.service = services.NewReportingService(suite.mockRepo, suite.mockShareholders)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestProfitDistribution_CurrentPeriod() {
	suite.mockRepo.On("GetProfitTotals", suite.ctx, "").
		Return(decimal.NewFromInt(10000), decimal.NewFromInt(7000), nil).Once()
	suite.mockShareholders.On("ListShareholders", suite.ctx).Return([]domain.Shareholder{
		{ShareholderID: "a", FullName: "A", SharePercent: decimal.NewFromInt(70)},
		{ShareholderID: "b", FullName: "B", SharePercent: decimal.NewFromInt(30)},
	}, nil).Once()

	report, err := suite.service.ProfitDistribution(suite.ctx, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(3000)))
	suite.Require().Len(report.Payouts, 2)
	suite.True(report.Payouts[0].Amount.Equal(decimal.NewFromInt(2100)))
	suite.True(report.Payouts[1].Amount.Equal(decimal.NewFromInt(900)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitDistribution_ArchivedYear() {
	year := "2023-2024"
	suite.mockRepo.On("GetProfitTotals", suite.ctx, year).
		Return(decimal.NewFromInt(5000), decimal.NewFromInt(6000), nil).Once()
	suite.mockShareholders.On("ListShareholders", suite.ctx).Return([]domain.Shareholder{
		{ShareholderID: "a", SharePercent: decimal.NewFromInt(100)},
	}, nil).Once()

	report, err := suite.service.ProfitDistribution(suite.ctx, year)

	suite.Require().NoError(err)
	suite.Equal(year, report.Year)
	// Losses are distributed too, as negative payouts.
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(-1000)))
	suite.True(report.Payouts[0].Amount.Equal(decimal.NewFromInt(-1000)))
}

func (suite *ReportingServiceTestSuite) TestProfitDistribution_RepoFailure() {
	suite.mockRepo.On("GetProfitTotals", suite.ctx, "").
		Return(decimal.Zero, decimal.Zero, assert.AnError).Once()

	report, err := suite.service.ProfitDistribution(suite.ctx, "")

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(report)
	suite.mockShareholders.AssertNotCalled(suite.T(), "ListShareholders")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
