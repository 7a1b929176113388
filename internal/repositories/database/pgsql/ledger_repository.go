package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	"github.com/schoolfin/school_finance_app/internal/models"
	"github.com/schoolfin/school_finance_app/internal/utils/accounting"
	"github.com/schoolfin/school_finance_app/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
	studentRepo portsrepo.StudentTxCollaborator
}

// newPgxLedgerRepository creates a new repository for the five ledger tables.
// The student collaborator applies tuition payments to the paying student's
// balance inside the payment transaction.
func newPgxLedgerRepository(pool *pgxpool.Pool, studentRepo portsrepo.StudentTxCollaborator) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		studentRepo:    studentRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// currentPeriodFilter selects rows that have not been archived yet.
const currentPeriodFilter = `fiscal_year IS NULL OR fiscal_year = ''`

const incomeColumns = `income_id, source, description, amount, date, COALESCE(fiscal_year, ''), created_at, created_by, last_updated_at, last_updated_by`

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(&m.IncomeID, &m.Source, &m.Description, &m.Amount, &m.Date, &m.FiscalYear,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxLedgerRepository) queryIncomes(ctx context.Context, query string, args ...any) ([]domain.Income, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	incomes := []models.Income{}
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", err)
	}
	return mapping.ToDomainIncomeSlice(incomes), nil
}

// ListCurrentIncomes returns income entries for the live period.
func (r *PgxLedgerRepository) ListCurrentIncomes(ctx context.Context) ([]domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE ` + currentPeriodFilter + ` ORDER BY date DESC;`
	return r.queryIncomes(ctx, query)
}

// ListIncomesByYear returns income entries archived under a year label.
func (r *PgxLedgerRepository) ListIncomesByYear(ctx context.Context, year string) ([]domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE fiscal_year = $1 ORDER BY date DESC;`
	return r.queryIncomes(ctx, query, year)
}

// SaveIncome persists a standalone income entry.
func (r *PgxLedgerRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	if _, err := r.Pool.Exec(ctx, insertIncomeQuery, insertIncomeArgs(mapping.ToModelIncome(income))...); err != nil {
		return fmt.Errorf("failed to insert income %s: %w", income.IncomeID, err)
	}
	return nil
}

const insertIncomeQuery = `
	INSERT INTO incomes (
		income_id, source, description, amount, date, fiscal_year,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10);
`

func insertIncomeArgs(m models.Income) []any {
	return []any{m.IncomeID, m.Source, m.Description, m.Amount, m.Date, m.FiscalYear,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy}
}

const expenseColumns = `expense_id, category, description, amount, date, COALESCE(fiscal_year, ''), created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ExpenseID, &m.Category, &m.Description, &m.Amount, &m.Date, &m.FiscalYear,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxLedgerRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(expenses), nil
}

// ListCurrentExpenses returns expense entries for the live period.
func (r *PgxLedgerRepository) ListCurrentExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE ` + currentPeriodFilter + ` ORDER BY date DESC;`
	return r.queryExpenses(ctx, query)
}

// ListExpensesByYear returns expense entries archived under a year label.
func (r *PgxLedgerRepository) ListExpensesByYear(ctx context.Context, year string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE fiscal_year = $1 ORDER BY date DESC;`
	return r.queryExpenses(ctx, query, year)
}

// SaveExpense persists a standalone expense entry.
func (r *PgxLedgerRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	if _, err := r.Pool.Exec(ctx, insertExpenseQuery, insertExpenseArgs(mapping.ToModelExpense(expense))...); err != nil {
		return fmt.Errorf("failed to insert expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

const insertExpenseQuery = `
	INSERT INTO expenses (
		expense_id, category, description, amount, date, fiscal_year,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10);
`

func insertExpenseArgs(m models.Expense) []any {
	return []any{m.ExpenseID, m.Category, m.Description, m.Amount, m.Date, m.FiscalYear,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy}
}

const paymentColumns = `payment_id, student_id, amount, date, notes, COALESCE(fiscal_year, ''), created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(&m.PaymentID, &m.StudentID, &m.Amount, &m.Date, &m.Notes, &m.FiscalYear,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxLedgerRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

// ListCurrentPayments returns tuition payments for the live period.
func (r *PgxLedgerRepository) ListCurrentPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ` + currentPeriodFilter + ` ORDER BY date DESC;`
	return r.queryPayments(ctx, query)
}

// ListPaymentsByYear returns tuition payments archived under a year label.
func (r *PgxLedgerRepository) ListPaymentsByYear(ctx context.Context, year string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE fiscal_year = $1 ORDER BY date DESC;`
	return r.queryPayments(ctx, query, year)
}

// SavePayment persists a tuition payment, applies it to the student's locked
// balance and inserts the mirrored income, all in one transaction.
func (r *PgxLedgerRepository) SavePayment(ctx context.Context, payment domain.Payment, mirror domain.Income) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	student, err := r.studentRepo.FindStudentByIDForUpdate(ctx, tx, payment.StudentID)
	if err != nil {
		return fmt.Errorf("payment %s: %w", payment.PaymentID, err)
	}

	updated, err := accounting.ApplyPayment(*student, payment.Amount)
	if err != nil {
		return fmt.Errorf("payment %s: %w", payment.PaymentID, err)
	}
	if err := r.studentRepo.UpdateStudentBalancesInTx(ctx, tx, updated, payment.LastUpdatedBy, payment.LastUpdatedAt); err != nil {
		return fmt.Errorf("payment %s: %w", payment.PaymentID, err)
	}

	m := mapping.ToModelPayment(payment)
	insertPayment := `
		INSERT INTO payments (
			payment_id, student_id, amount, date, notes, fiscal_year,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertPayment,
		m.PaymentID, m.StudentID, m.Amount, m.Date, m.Notes, m.FiscalYear,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	if _, err := tx.Exec(ctx, insertIncomeQuery, insertIncomeArgs(mapping.ToModelIncome(mirror))...); err != nil {
		return fmt.Errorf("failed to insert mirrored income for payment %s: %w", m.PaymentID, err)
	}

	return r.Commit(ctx, tx)
}

const salaryPaymentColumns = `salary_payment_id, staff_id, amount, month, date, COALESCE(fiscal_year, ''), created_at, created_by, last_updated_at, last_updated_by`

func scanSalaryPayment(row pgx.Row) (models.SalaryPayment, error) {
	var m models.SalaryPayment
	err := row.Scan(&m.SalaryPaymentID, &m.StaffID, &m.Amount, &m.Month, &m.Date, &m.FiscalYear,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxLedgerRepository) querySalaryPayments(ctx context.Context, query string, args ...any) ([]domain.SalaryPayment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary payments: %w", err)
	}
	defer rows.Close()

	salaryPayments := []models.SalaryPayment{}
	for rows.Next() {
		m, err := scanSalaryPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary payment row: %w", err)
		}
		salaryPayments = append(salaryPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary payment rows: %w", err)
	}
	return mapping.ToDomainSalaryPaymentSlice(salaryPayments), nil
}

// ListCurrentSalaryPayments returns salary payments for the live period.
func (r *PgxLedgerRepository) ListCurrentSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	query := `SELECT ` + salaryPaymentColumns + ` FROM salary_payments WHERE ` + currentPeriodFilter + ` ORDER BY date DESC;`
	return r.querySalaryPayments(ctx, query)
}

// ListSalaryPaymentsByYear returns salary payments archived under a year label.
func (r *PgxLedgerRepository) ListSalaryPaymentsByYear(ctx context.Context, year string) ([]domain.SalaryPayment, error) {
	query := `SELECT ` + salaryPaymentColumns + ` FROM salary_payments WHERE fiscal_year = $1 ORDER BY date DESC;`
	return r.querySalaryPayments(ctx, query, year)
}

// SaveSalaryPayment persists a salary payment and its mirrored expense in one
// transaction.
func (r *PgxLedgerRepository) SaveSalaryPayment(ctx context.Context, salaryPayment domain.SalaryPayment, mirror domain.Expense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSalaryPayment(salaryPayment)
	insertSalaryPayment := `
		INSERT INTO salary_payments (
			salary_payment_id, staff_id, amount, month, date, fiscal_year,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertSalaryPayment,
		m.SalaryPaymentID, m.StaffID, m.Amount, m.Month, m.Date, m.FiscalYear,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert salary payment %s: %w", m.SalaryPaymentID, err)
	}

	if _, err := tx.Exec(ctx, insertExpenseQuery, insertExpenseArgs(mapping.ToModelExpense(mirror))...); err != nil {
		return fmt.Errorf("failed to insert mirrored expense for salary payment %s: %w", m.SalaryPaymentID, err)
	}

	return r.Commit(ctx, tx)
}

const foodPaymentColumns = `food_payment_id, student_id, amount, date, COALESCE(fiscal_year, ''), created_at, created_by, last_updated_at, last_updated_by`

func scanFoodPayment(row pgx.Row) (models.FoodPayment, error) {
	var m models.FoodPayment
	err := row.Scan(&m.FoodPaymentID, &m.StudentID, &m.Amount, &m.Date, &m.FiscalYear,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxLedgerRepository) queryFoodPayments(ctx context.Context, query string, args ...any) ([]domain.FoodPayment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query food payments: %w", err)
	}
	defer rows.Close()

	foodPayments := []models.FoodPayment{}
	for rows.Next() {
		m, err := scanFoodPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food payment row: %w", err)
		}
		foodPayments = append(foodPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating food payment rows: %w", err)
	}
	return mapping.ToDomainFoodPaymentSlice(foodPayments), nil
}

// ListCurrentFoodPayments returns food payments for the live period.
func (r *PgxLedgerRepository) ListCurrentFoodPayments(ctx context.Context) ([]domain.FoodPayment, error) {
	query := `SELECT ` + foodPaymentColumns + ` FROM food_payments WHERE ` + currentPeriodFilter + ` ORDER BY date DESC;`
	return r.queryFoodPayments(ctx, query)
}

// ListFoodPaymentsByYear returns food payments archived under a year label.
func (r *PgxLedgerRepository) ListFoodPaymentsByYear(ctx context.Context, year string) ([]domain.FoodPayment, error) {
	query := `SELECT ` + foodPaymentColumns + ` FROM food_payments WHERE fiscal_year = $1 ORDER BY date DESC;`
	return r.queryFoodPayments(ctx, query, year)
}

// SaveFoodPayment persists a food payment and its mirrored income in one
// transaction. Food money does not touch the tuition balance.
func (r *PgxLedgerRepository) SaveFoodPayment(ctx context.Context, foodPayment domain.FoodPayment, mirror domain.Income) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelFoodPayment(foodPayment)
	insertFoodPayment := `
		INSERT INTO food_payments (
			food_payment_id, student_id, amount, date, fiscal_year,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertFoodPayment,
		m.FoodPaymentID, m.StudentID, m.Amount, m.Date, m.FiscalYear,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert food payment %s: %w", m.FoodPaymentID, err)
	}

	if _, err := tx.Exec(ctx, insertIncomeQuery, insertIncomeArgs(mapping.ToModelIncome(mirror))...); err != nil {
		return fmt.Errorf("failed to insert mirrored income for food payment %s: %w", m.FoodPaymentID, err)
	}

	return r.Commit(ctx, tx)
}
