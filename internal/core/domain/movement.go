package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a movement is a Debit or a Credit.
// The arithmetic is uniform: DEBIT increases the stored balance, CREDIT
// decreases it. What that means for the business depends on the account
// kind and is a presentation concern.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// SourceKind identifies the document type that owns a movement.
type SourceKind string

const (
	SourceInvoice        SourceKind = "invoice"
	SourceSalesSlip      SourceKind = "sales_slip"
	SourcePayment        SourceKind = "payment"
	SourceSalaryAccrual  SourceKind = "salary_accrual"
	SourceOpeningBalance SourceKind = "opening_balance"
)

// Movement is one immutable ledger entry, the atomic unit of balance
// change. Amount is always stored positive; the sign is carried by
// Direction. MovementID is a ULID, so lexicographic order within equal
// transaction dates is insertion order.
type Movement struct {
	MovementID      string          `json:"movementID"` // Primary Key (ULID)
	AccountID       string          `json:"accountID"`  // FK -> Account.accountID (Not Null)
	Direction       Direction       `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`       // Positive value; precise decimal type
	CurrencyCode    string          `json:"currencyCode"` // FK -> Currency.currencyCode (Not Null)
	ExchangeRate    decimal.Decimal `json:"exchangeRate"` // TL rate snapshot at record time
	SourceKind      SourceKind      `json:"sourceKind"`
	SourceID        string          `json:"sourceID"` // Owning document ID (accountID for opening balances)
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
