package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:    d.PaymentID,
		AccountID:    d.AccountID,
		PaymentType:  string(d.PaymentType),
		Method:       string(d.Method),
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		PaymentDate:  d.PaymentDate,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:    m.PaymentID,
		AccountID:    m.AccountID,
		PaymentType:  domain.PaymentType(m.PaymentType),
		Method:       domain.PaymentMethod(m.Method),
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		PaymentDate:  m.PaymentDate,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
