package domain

import "github.com/shopspring/decimal"

// ShareholderPayout is one shareholder's slice of a period's profit.
type ShareholderPayout struct {
	ShareholderID string          `json:"shareholderID"`
	FullName      string          `json:"fullName"`
	SharePercent  decimal.Decimal `json:"sharePercent"`
	Amount        decimal.Decimal `json:"amount"`
}

// ProfitDistribution summarizes a period's profit and how it splits across
// shareholders. Year is empty when reporting on the current (untagged) period.
type ProfitDistribution struct {
	Year          string              `json:"year,omitempty"`
	TotalIncome   decimal.Decimal     `json:"totalIncome"`
	TotalExpenses decimal.Decimal     `json:"totalExpenses"`
	NetProfit     decimal.Decimal     `json:"netProfit"`
	Payouts       []ShareholderPayout `json:"payouts"`
}
