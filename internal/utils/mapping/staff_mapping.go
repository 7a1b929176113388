package mapping

import (
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/schoolfin/school_finance_app/internal/models"
)

// ToModelStaff converts a domain Staff to a model Staff
func ToModelStaff(d domain.Staff) models.Staff {
	return models.Staff{
		StaffID:     d.StaffID,
		FullName:    d.FullName,
		Mobile:      d.Mobile,
		Position:    d.Position,
		Salary:      d.Salary,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStaff converts a model Staff to a domain Staff
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:     m.StaffID,
		FullName:    m.FullName,
		Mobile:      m.Mobile,
		Position:    m.Position,
		Salary:      m.Salary,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStaffSlice converts a slice of model Staff to domain Staff
func ToDomainStaffSlice(ms []models.Staff) []domain.Staff {
	ds := make([]domain.Staff, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaff(m)
	}
	return ds
}

// ToModelShareholder converts a domain Shareholder to a model Shareholder
func ToModelShareholder(d domain.Shareholder) models.Shareholder {
	return models.Shareholder{
		ShareholderID: d.ShareholderID,
		FullName:      d.FullName,
		Mobile:        d.Mobile,
		SharePercent:  d.SharePercent,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShareholder converts a model Shareholder to a domain Shareholder
func ToDomainShareholder(m models.Shareholder) domain.Shareholder {
	return domain.Shareholder{
		ShareholderID: m.ShareholderID,
		FullName:      m.FullName,
		Mobile:        m.Mobile,
		SharePercent:  m.SharePercent,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShareholderSlice converts a slice of model Shareholders to domain Shareholders
func ToDomainShareholderSlice(ms []models.Shareholder) []domain.Shareholder {
	ds := make([]domain.Shareholder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShareholder(m)
	}
	return ds
}
