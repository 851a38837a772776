package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyTotals aggregates all movements of one currency.
type CurrencyTotals struct {
	CurrencyCode string          `json:"currencyCode"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	Balance      decimal.Decimal `json:"balance"` // TotalDebit - TotalCredit
}

// AccountBalance is one account's derived balance in one currency, joined
// to account metadata for the dashboard views.
type AccountBalance struct {
	AccountID    string          `json:"accountID"`
	Title        string          `json:"title"`
	Kind         AccountKind     `json:"kind"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// DashboardSummary is the read-only dashboard aggregate.
type DashboardSummary struct {
	ByCurrency   []CurrencyTotals `json:"byCurrency"`
	TopDebtors   []AccountBalance `json:"topDebtors"`   // balance > 0, largest first
	TopCreditors []AccountBalance `json:"topCreditors"` // balance < 0, most negative first
}
