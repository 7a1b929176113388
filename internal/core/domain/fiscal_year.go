package domain

import "time"

// FiscalYear represents one academic/accounting period, e.g. "2024-2025".
// At most one fiscal year is current at any time; a closed year is never current.
type FiscalYear struct {
	FiscalYearID string     `json:"fiscalYearID"` // Primary Key (UUID)
	Year         string     `json:"year"`         // Unique label, format "YYYY-YYYY"
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"` // Set when the year is closed
	AuditFields
}

// CloseResult summarizes the outcome of closing a fiscal year.
type CloseResult struct {
	PromotedStudents int    `json:"promotedStudents"`
	NewYear          string `json:"newYear"`
}
