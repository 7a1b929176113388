package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schoolfin/school_finance_app/internal/apperrors"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
)

// Mirror categories keep the automatic rows recognizable in income and
// expense listings.
const (
	tuitionIncomeSource = "Tuition"
	foodIncomeSource    = "Food"
	salaryExpenseCat    = "Salaries"
)

type ledgerService struct {
	BaseService
	repo        portsrepo.LedgerRepositoryFacade
	studentRepo portsrepo.StudentReader
	staffRepo   portsrepo.StaffReader
}

// NewLedgerService creates a new ledger service. Student and staff readers
// are used to validate payment targets and label the mirrored rows.
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, studentRepo portsrepo.StudentReader, staffRepo portsrepo.StaffReader) portssvc.LedgerSvcFacade {
	return &ledgerService{repo: repo, studentRepo: studentRepo, staffRepo: staffRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) ListCurrentIncomes(ctx context.Context) ([]domain.Income, error) {
	return s.repo.ListCurrentIncomes(ctx)
}

func (s *ledgerService) ListCurrentExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.repo.ListCurrentExpenses(ctx)
}

func (s *ledgerService) ListCurrentPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.ListCurrentPayments(ctx)
}

func (s *ledgerService) ListCurrentSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	return s.repo.ListCurrentSalaryPayments(ctx)
}

func (s *ledgerService) ListCurrentFoodPayments(ctx context.Context) ([]domain.FoodPayment, error) {
	return s.repo.ListCurrentFoodPayments(ctx)
}

// ListArchived retrieves one ledger table's rows archived under an exact year
// label. The concrete slice type depends on entityType.
func (s *ledgerService) ListArchived(ctx context.Context, year string, entityType domain.LedgerEntityType) (any, error) {
	switch entityType {
	case domain.IncomeEntity:
		return s.repo.ListIncomesByYear(ctx, year)
	case domain.ExpenseEntity:
		return s.repo.ListExpensesByYear(ctx, year)
	case domain.PaymentEntity:
		return s.repo.ListPaymentsByYear(ctx, year)
	case domain.SalaryPaymentEntity:
		return s.repo.ListSalaryPaymentsByYear(ctx, year)
	case domain.FoodPaymentEntity:
		return s.repo.ListFoodPaymentsByYear(ctx, year)
	default:
		return nil, fmt.Errorf("unknown ledger entity type %q: %w", entityType, apperrors.ErrValidation)
	}
}

// CreateIncome records a standalone income entry.
func (s *ledgerService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("income amount must be positive: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	income := domain.Income{
		IncomeID:    uuid.NewString(),
		Source:      req.Source,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		AuditFields: newAuditFields(creatorUserID),
	}

	if err := s.repo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to create income")
		return nil, err
	}
	return &income, nil
}

// CreateExpense records a standalone expense entry.
func (s *ledgerService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("expense amount must be positive: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		AuditFields: newAuditFields(creatorUserID),
	}

	if err := s.repo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to create expense")
		return nil, err
	}
	return &expense, nil
}

// CreatePayment records a tuition payment. The student's balance is updated
// and a mirrored income row is written in the same transaction, so totals
// over incomes alone already include tuition money.
func (s *ledgerService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	student, err := s.studentRepo.FindStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student %s: %w", req.StudentID, err)
	}

	audit := newAuditFields(creatorUserID)
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		Date:        date,
		Notes:       req.Notes,
		AuditFields: audit,
	}
	mirror := domain.Income{
		IncomeID:    uuid.NewString(),
		Source:      tuitionIncomeSource,
		Description: fmt.Sprintf("Tuition payment from %s", student.FullName),
		Amount:      req.Amount,
		Date:        date,
		AuditFields: audit,
	}

	if err := s.repo.SavePayment(ctx, payment, mirror); err != nil {
		s.LogError(ctx, err, "Failed to create payment", slog.String("student_id", req.StudentID))
		return nil, err
	}

	s.LogInfo(ctx, "Tuition payment recorded",
		slog.String("student_id", req.StudentID),
		slog.String("amount", req.Amount.String()),
	)
	return &payment, nil
}

// CreateSalaryPayment records a salary payment with its mirrored expense.
func (s *ledgerService) CreateSalaryPayment(ctx context.Context, req dto.CreateSalaryPaymentRequest, creatorUserID string) (*domain.SalaryPayment, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("salary payment amount must be positive: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, req.StaffID)
	if err != nil {
		return nil, fmt.Errorf("staff member %s: %w", req.StaffID, err)
	}

	audit := newAuditFields(creatorUserID)
	salaryPayment := domain.SalaryPayment{
		SalaryPaymentID: uuid.NewString(),
		StaffID:         req.StaffID,
		Amount:          req.Amount,
		Month:           req.Month,
		Date:            date,
		AuditFields:     audit,
	}
	mirror := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Category:    salaryExpenseCat,
		Description: fmt.Sprintf("Salary for %s, %s", staff.FullName, req.Month),
		Amount:      req.Amount,
		Date:        date,
		AuditFields: audit,
	}

	if err := s.repo.SaveSalaryPayment(ctx, salaryPayment, mirror); err != nil {
		s.LogError(ctx, err, "Failed to create salary payment", slog.String("staff_id", req.StaffID))
		return nil, err
	}

	s.LogInfo(ctx, "Salary payment recorded",
		slog.String("staff_id", req.StaffID),
		slog.String("month", req.Month),
	)
	return &salaryPayment, nil
}

// CreateFoodPayment records a food payment with its mirrored income. Food
// money never touches the tuition balance.
func (s *ledgerService) CreateFoodPayment(ctx context.Context, req dto.CreateFoodPaymentRequest, creatorUserID string) (*domain.FoodPayment, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("food payment amount must be positive: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	student, err := s.studentRepo.FindStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student %s: %w", req.StudentID, err)
	}

	audit := newAuditFields(creatorUserID)
	foodPayment := domain.FoodPayment{
		FoodPaymentID: uuid.NewString(),
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		Date:          date,
		AuditFields:   audit,
	}
	mirror := domain.Income{
		IncomeID:    uuid.NewString(),
		Source:      foodIncomeSource,
		Description: fmt.Sprintf("Food payment from %s", student.FullName),
		Amount:      req.Amount,
		Date:        date,
		AuditFields: audit,
	}

	if err := s.repo.SaveFoodPayment(ctx, foodPayment, mirror); err != nil {
		s.LogError(ctx, err, "Failed to create food payment", slog.String("student_id", req.StudentID))
		return nil, err
	}
	return &foodPayment, nil
}

func newAuditFields(userID string) domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
