package services

import (
	portsrepo "github.com/schoolfin/school_finance_app/internal/core/ports/repositories"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a container with all services initialized from
// the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		FiscalYear:  NewFiscalYearService(repos.FiscalYearRepo),
		Student:     NewStudentService(repos.StudentRepo),
		Ledger:      NewLedgerService(repos.LedgerRepo, repos.StudentRepo, repos.StaffRepo),
		Staff:       NewStaffService(repos.StaffRepo),
		Shareholder: NewShareholderService(repos.ShareholderRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, repos.ShareholderRepo),
	}
}
