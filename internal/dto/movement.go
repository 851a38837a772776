package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// RecordMovementInput carries everything the ledger engine needs to append
// one movement. Direction is already resolved by the calling workflow via
// the business-event table; currency codes are already validated at the
// workflow boundary.
type RecordMovementInput struct {
	AccountID       string
	Direction       domain.Direction
	Amount          decimal.Decimal
	CurrencyCode    string
	ExchangeRate    decimal.Decimal
	SourceKind      domain.SourceKind
	SourceID        string
	Description     string
	TransactionDate time.Time
	UserID          string
}

// MovementResponse is one ledger movement as rendered inside a document
// response. BaseAmount is the TL equivalent at the movement's rate snapshot.
type MovementResponse struct {
	MovementID      string          `json:"movementID"`
	AccountID       string          `json:"accountID"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	SourceKind      string          `json:"sourceKind"`
	SourceID        string          `json:"sourceID"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// ToMovementResponses converts domain movements.
func ToMovementResponses(movements []domain.Movement) []MovementResponse {
	out := make([]MovementResponse, len(movements))
	for i, m := range movements {
		out[i] = MovementResponse{
			MovementID:      m.MovementID,
			AccountID:       m.AccountID,
			Direction:       string(m.Direction),
			Amount:          m.Amount,
			CurrencyCode:    m.CurrencyCode,
			ExchangeRate:    m.ExchangeRate,
			BaseAmount:      accounting.BaseEquivalent(m.Amount, m.ExchangeRate),
			SourceKind:      string(m.SourceKind),
			SourceID:        m.SourceID,
			Description:     m.Description,
			TransactionDate: m.TransactionDate,
		}
	}
	return out
}
