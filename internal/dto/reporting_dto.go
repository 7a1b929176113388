package dto

import (
	"github.com/schoolfin/school_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShareholderPayoutResponse is one row of a profit distribution report.
type ShareholderPayoutResponse struct {
	ShareholderID string          `json:"shareholderID"`
	FullName      string          `json:"fullName"`
	SharePercent  decimal.Decimal `json:"sharePercent"`
	Amount        decimal.Decimal `json:"amount"`
}

// ProfitDistributionResponse defines the data returned by the
// profit-distribution report.
type ProfitDistributionResponse struct {
	Year          string                      `json:"year,omitempty"`
	TotalIncome   decimal.Decimal             `json:"totalIncome"`
	TotalExpenses decimal.Decimal             `json:"totalExpenses"`
	NetProfit     decimal.Decimal             `json:"netProfit"`
	Payouts       []ShareholderPayoutResponse `json:"payouts"`
}

// ToProfitDistributionResponse converts a domain.ProfitDistribution to its DTO
func ToProfitDistributionResponse(pd *domain.ProfitDistribution) ProfitDistributionResponse {
	payouts := make([]ShareholderPayoutResponse, len(pd.Payouts))
	for i, p := range pd.Payouts {
		payouts[i] = ShareholderPayoutResponse{
			ShareholderID: p.ShareholderID,
			FullName:      p.FullName,
			SharePercent:  p.SharePercent,
			Amount:        p.Amount,
		}
	}
	return ProfitDistributionResponse{
		Year:          pd.Year,
		TotalIncome:   pd.TotalIncome,
		TotalExpenses: pd.TotalExpenses,
		NetProfit:     pd.NetProfit,
		Payouts:       payouts,
	}
}
