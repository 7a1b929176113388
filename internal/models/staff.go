package models

import "github.com/shopspring/decimal"

// Staff maps to the staff table.
type Staff struct {
	StaffID  string          `json:"staffID"`
	FullName string          `json:"fullName"`
	Mobile   string          `json:"mobile"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	AuditFields
}

// Shareholder maps to the shareholders table.
type Shareholder struct {
	ShareholderID string          `json:"shareholderID"`
	FullName      string          `json:"fullName"`
	Mobile        string          `json:"mobile"`
	SharePercent  decimal.Decimal `json:"sharePercent"`
	AuditFields
}
