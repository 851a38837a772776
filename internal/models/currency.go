package models

// Currency represents a currency definition in the database.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "TL", "USD")
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}
