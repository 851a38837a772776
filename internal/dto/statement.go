package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementQuery carries the parsed query parameters of a statement request.
type StatementQuery struct {
	CurrencyCode string     `form:"currency" binding:"required,len=2|len=3"`
	From         *time.Time `form:"from" time_format:"2006-01-02"`
	To           *time.Time `form:"to" time_format:"2006-01-02"`
}

// Bounds returns the statement window. Both parameters parse as bare dates,
// so To lands on midnight; it is widened to the last instant of its day to
// keep the window inclusive of movements timestamped during the end day.
func (q StatementQuery) Bounds() (from, to *time.Time) {
	from = q.From
	if q.To != nil {
		endOfDay := q.To.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &endOfDay
	}
	return from, to
}

// StatementLineResponse is one rendered statement row.
type StatementLineResponse struct {
	Date           time.Time       `json:"date"`
	SourceKind     string          `json:"sourceKind"`
	Description    string          `json:"description,omitempty"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// StatementResponse is the full statement for one account and currency.
type StatementResponse struct {
	AccountID    string                  `json:"accountID"`
	CurrencyCode string                  `json:"currencyCode"`
	Lines        []StatementLineResponse `json:"lines"`
}

// ToStatementLineResponses converts domain statement lines.
func ToStatementLineResponses(lines []domain.StatementLine) []StatementLineResponse {
	out := make([]StatementLineResponse, len(lines))
	for i, l := range lines {
		out[i] = StatementLineResponse{
			Date:           l.Date,
			SourceKind:     string(l.SourceKind),
			Description:    l.Description,
			DebitAmount:    l.DebitAmount,
			CreditAmount:   l.CreditAmount,
			RunningBalance: l.RunningBalance,
		}
	}
	return out
}
