package domain

import "github.com/shopspring/decimal"

// Staff represents an employee drawing a monthly salary.
type Staff struct {
	StaffID  string          `json:"staffID"` // Primary Key (UUID)
	FullName string          `json:"fullName"`
	Mobile   string          `json:"mobile"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	AuditFields
}

// Shareholder represents a passive owner entitled to a share of profit.
type Shareholder struct {
	ShareholderID string          `json:"shareholderID"` // Primary Key (UUID)
	FullName      string          `json:"fullName"`
	Mobile        string          `json:"mobile"`
	SharePercent  decimal.Decimal `json:"sharePercent"` // 0-100
	AuditFields
}
