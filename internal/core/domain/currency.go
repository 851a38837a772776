package domain

// BaseCurrencyCode is the currency all exchange rates are quoted against.
// Turkish small businesses keep their books in lira.
const BaseCurrencyCode = "TL"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}
