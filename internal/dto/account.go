package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for creating a cari account.
type CreateAccountRequest struct {
	Title                  string           `json:"title" binding:"required"`
	Kind                   string           `json:"kind" binding:"required,oneof=CUSTOMER SUPPLIER EMPLOYEE"`
	CurrencyCode           string           `json:"currencyCode" binding:"required,len=2|len=3"`
	OpeningBalance         decimal.Decimal  `json:"openingBalance"`
	OpeningBalanceCurrency string           `json:"openingBalanceCurrency"`
	Phone                  string           `json:"phone"`
	Email                  string           `json:"email" binding:"omitempty,email"`
	TaxNumber              string           `json:"taxNumber"`
	Salary                 *decimal.Decimal `json:"salary"`
}

// UpdateAccountRequest defines the updatable account fields. Kind and
// currency are intentionally absent.
type UpdateAccountRequest struct {
	Title     *string          `json:"title"`
	Phone     *string          `json:"phone"`
	Email     *string          `json:"email" binding:"omitempty,email"`
	TaxNumber *string          `json:"taxNumber"`
	Salary    *decimal.Decimal `json:"salary"`
	IsActive  *bool            `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID              string           `json:"accountID"`
	Title                  string           `json:"title"`
	Kind                   string           `json:"kind"`
	CurrencyCode           string           `json:"currencyCode"`
	OpeningBalance         decimal.Decimal  `json:"openingBalance"`
	OpeningBalanceCurrency string           `json:"openingBalanceCurrency"`
	Phone                  string           `json:"phone,omitempty"`
	Email                  string           `json:"email,omitempty"`
	TaxNumber              string           `json:"taxNumber,omitempty"`
	IsActive               bool             `json:"isActive"`
	Salary                 *decimal.Decimal `json:"salary,omitempty"`
	CreatedAt              time.Time        `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:              a.AccountID,
		Title:                  a.Title,
		Kind:                   string(a.Kind),
		CurrencyCode:           a.CurrencyCode,
		OpeningBalance:         a.OpeningBalance,
		OpeningBalanceCurrency: a.OpeningBalanceCurrency,
		Phone:                  a.Phone,
		Email:                  a.Email,
		TaxNumber:              a.TaxNumber,
		IsActive:               a.IsActive,
		Salary:                 a.Salary,
		CreatedAt:              a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
