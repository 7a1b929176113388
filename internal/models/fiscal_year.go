package models

import "time"

// FiscalYear maps to the fiscal_years table.
type FiscalYear struct {
	FiscalYearID string     `json:"fiscalYearID"`
	Year         string     `json:"year"` // Unique, "YYYY-YYYY"
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	AuditFields
}
