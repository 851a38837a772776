package models

import "github.com/shopspring/decimal"

// Account represents a cari account row.
type Account struct {
	AccountID              string           `json:"accountID"` // Primary Key (UUID)
	Title                  string           `json:"title"`
	Kind                   string           `json:"kind"` // CUSTOMER, SUPPLIER or EMPLOYEE
	CurrencyCode           string           `json:"currencyCode"`
	OpeningBalance         decimal.Decimal  `json:"openingBalance"`
	OpeningBalanceCurrency string           `json:"openingBalanceCurrency"`
	Phone                  string           `json:"phone"`
	Email                  string           `json:"email"`
	TaxNumber              string           `json:"taxNumber"`
	IsActive               bool             `json:"isActive"`
	Salary                 *decimal.Decimal `json:"salary"` // Employees only
	AuditFields
}
