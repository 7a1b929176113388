package mapping

import (
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/models"
)

// ToModelStudent converts a domain Student to a model Student
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		StudentID:        d.StudentID,
		FullName:         d.FullName,
		Mobile:           d.Mobile,
		Grade:            d.Grade,
		TuitionFee:       d.TuitionFee,
		PaidAmount:       d.PaidAmount,
		RemainingAmount:  d.RemainingAmount,
		PreviousYearDebt: d.PreviousYearDebt,
		FiscalYear:       d.FiscalYear,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStudent converts a model Student to a domain Student
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		StudentID:        m.StudentID,
		FullName:         m.FullName,
		Mobile:           m.Mobile,
		Grade:            m.Grade,
		TuitionFee:       m.TuitionFee,
		PaidAmount:       m.PaidAmount,
		RemainingAmount:  m.RemainingAmount,
		PreviousYearDebt: m.PreviousYearDebt,
		FiscalYear:       m.FiscalYear,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStudentSlice converts a slice of model Students to domain Students
func ToDomainStudentSlice(ms []models.Student) []domain.Student {
	ds := make([]domain.Student, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudent(m)
	}
	return ds
}
