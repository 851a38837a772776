package dto

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyTotalsResponse is one row of the per-currency dashboard block.
type CurrencyTotalsResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	Balance      decimal.Decimal `json:"balance"`
}

// AccountBalanceResponse is one account's balance on the dashboard.
type AccountBalanceResponse struct {
	AccountID    string          `json:"accountID"`
	Title        string          `json:"title"`
	Kind         string          `json:"kind"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// DashboardSummaryResponse is the dashboard aggregate payload.
type DashboardSummaryResponse struct {
	ByCurrency   []CurrencyTotalsResponse `json:"byCurrency"`
	TopDebtors   []AccountBalanceResponse `json:"topDebtors"`
	TopCreditors []AccountBalanceResponse `json:"topCreditors"`
}

// ToDashboardSummaryResponse converts the domain dashboard aggregate.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	byCurrency := make([]CurrencyTotalsResponse, len(s.ByCurrency))
	for i, c := range s.ByCurrency {
		byCurrency[i] = CurrencyTotalsResponse{
			CurrencyCode: c.CurrencyCode,
			TotalDebit:   c.TotalDebit,
			TotalCredit:  c.TotalCredit,
			Balance:      c.Balance,
		}
	}
	toBalances := func(in []domain.AccountBalance) []AccountBalanceResponse {
		out := make([]AccountBalanceResponse, len(in))
		for i, b := range in {
			out[i] = AccountBalanceResponse{
				AccountID:    b.AccountID,
				Title:        b.Title,
				Kind:         string(b.Kind),
				CurrencyCode: b.CurrencyCode,
				Balance:      b.Balance,
			}
		}
		return out
	}
	return DashboardSummaryResponse{
		ByCurrency:   byCurrency,
		TopDebtors:   toBalances(s.TopDebtors),
		TopCreditors: toBalances(s.TopCreditors),
	}
}
