package mapping

import (
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/models"
)

// ToModelFiscalYear converts a domain FiscalYear to a model FiscalYear
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: d.FiscalYearID,
		Year:         d.Year,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		IsCurrent:    d.IsCurrent,
		IsClosed:     d.IsClosed,
		ClosedAt:     d.ClosedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalYear converts a model FiscalYear to a domain FiscalYear
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		Year:         m.Year,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsCurrent:    m.IsCurrent,
		IsClosed:     m.IsClosed,
		ClosedAt:     m.ClosedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFiscalYearSlice converts a slice of model FiscalYears to domain FiscalYears
func ToDomainFiscalYearSlice(ms []models.FiscalYear) []domain.FiscalYear {
	ds := make([]domain.FiscalYear, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFiscalYear(m)
	}
	return ds
}
