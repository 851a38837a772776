package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies a cari account by the kind of counterparty it tracks.
type AccountKind string

const (
	Customer AccountKind = "CUSTOMER"
	Supplier AccountKind = "SUPPLIER"
	Employee AccountKind = "EMPLOYEE"
)

// Account represents a counterparty (cari) whose per-currency running
// balance is derived from the movement stream. OpeningBalance is a seed
// amount materialized as an opening_balance movement at creation time, not
// a live balance field.
type Account struct {
	AccountID              string           `json:"accountID"` // Primary Key (e.g., UUID)
	Title                  string           `json:"title"`
	Kind                   AccountKind      `json:"kind"`
	CurrencyCode           string           `json:"currencyCode"` // Default currency for new documents
	OpeningBalance         decimal.Decimal  `json:"openingBalance"`
	OpeningBalanceCurrency string           `json:"openingBalanceCurrency"`
	Phone                  string           `json:"phone"`
	Email                  string           `json:"email"`
	TaxNumber              string           `json:"taxNumber"`
	IsActive               bool             `json:"isActive"`
	Salary                 *decimal.Decimal `json:"salary,omitempty"` // Only meaningful for EMPLOYEE accounts
	AuditFields
}
