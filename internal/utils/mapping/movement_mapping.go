package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:      d.MovementID,
		AccountID:       d.AccountID,
		Direction:       string(d.Direction),
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		ExchangeRate:    d.ExchangeRate,
		SourceKind:      string(d.SourceKind),
		SourceID:        d.SourceID,
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:      m.MovementID,
		AccountID:       m.AccountID,
		Direction:       domain.Direction(m.Direction),
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		ExchangeRate:    m.ExchangeRate,
		SourceKind:      domain.SourceKind(m.SourceKind),
		SourceID:        m.SourceID,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
