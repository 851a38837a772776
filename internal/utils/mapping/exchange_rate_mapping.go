package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		CurrencyCode:   d.CurrencyCode,
		Rate:           d.Rate,
		RateDate:       d.RateDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		CurrencyCode:   m.CurrencyCode,
		Rate:           m.Rate,
		RateDate:       m.RateDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
