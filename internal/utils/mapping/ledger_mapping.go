package mapping

import (
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:    d.IncomeID,
		Source:      d.Source,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		FiscalYear:  d.FiscalYear,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:    m.IncomeID,
		Source:      m.Source,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		FiscalYear:  m.FiscalYear,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSlice converts model Incomes to domain Incomes
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	ds := make([]domain.Income, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		FiscalYear:  d.FiscalYear,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		FiscalYear:  m.FiscalYear,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		StudentID:   d.StudentID,
		Amount:      d.Amount,
		Date:        d.Date,
		Notes:       d.Notes,
		FiscalYear:  d.FiscalYear,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		StudentID:   m.StudentID,
		Amount:      m.Amount,
		Date:        m.Date,
		Notes:       m.Notes,
		FiscalYear:  m.FiscalYear,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelSalaryPayment converts a domain SalaryPayment to a model SalaryPayment
func ToModelSalaryPayment(d domain.SalaryPayment) models.SalaryPayment {
	return models.SalaryPayment{
		SalaryPaymentID: d.SalaryPaymentID,
		StaffID:         d.StaffID,
		Amount:          d.Amount,
		Month:           d.Month,
		Date:            d.Date,
		FiscalYear:      d.FiscalYear,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalaryPayment converts a model SalaryPayment to a domain SalaryPayment
func ToDomainSalaryPayment(m models.SalaryPayment) domain.SalaryPayment {
	return domain.SalaryPayment{
		SalaryPaymentID: m.SalaryPaymentID,
		StaffID:         m.StaffID,
		Amount:          m.Amount,
		Month:           m.Month,
		Date:            m.Date,
		FiscalYear:      m.FiscalYear,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalaryPaymentSlice converts model SalaryPayments to domain SalaryPayments
func ToDomainSalaryPaymentSlice(ms []models.SalaryPayment) []domain.SalaryPayment {
	ds := make([]domain.SalaryPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalaryPayment(m)
	}
	return ds
}

// ToModelFoodPayment converts a domain FoodPayment to a model FoodPayment
func ToModelFoodPayment(d domain.FoodPayment) models.FoodPayment {
	return models.FoodPayment{
		FoodPaymentID: d.FoodPaymentID,
		StudentID:     d.StudentID,
		Amount:        d.Amount,
		Date:          d.Date,
		FiscalYear:    d.FiscalYear,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFoodPayment converts a model FoodPayment to a domain FoodPayment
func ToDomainFoodPayment(m models.FoodPayment) domain.FoodPayment {
	return domain.FoodPayment{
		FoodPaymentID: m.FoodPaymentID,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		Date:          m.Date,
		FiscalYear:    m.FiscalYear,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFoodPaymentSlice converts model FoodPayments to domain FoodPayments
func ToDomainFoodPaymentSlice(ms []models.FoodPayment) []domain.FoodPayment {
	ds := make([]domain.FoodPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFoodPayment(m)
	}
	return ds
}
