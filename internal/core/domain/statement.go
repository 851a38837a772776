package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceOpeningCarryforward marks the synthetic first statement line that
// carries the net balance of everything before the statement's start date.
// It is never persisted.
const SourceOpeningCarryforward SourceKind = "OPENING_CARRYFORWARD"

// StatementLine is one row of an account statement: a movement replayed
// with the running balance after it. Derived, never stored.
type StatementLine struct {
	Date           time.Time       `json:"date"`
	SourceKind     SourceKind      `json:"sourceKind"`
	Description    string          `json:"description"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
