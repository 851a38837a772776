package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:              d.AccountID,
		Title:                  d.Title,
		Kind:                   string(d.Kind),
		CurrencyCode:           d.CurrencyCode,
		OpeningBalance:         d.OpeningBalance,
		OpeningBalanceCurrency: d.OpeningBalanceCurrency,
		Phone:                  d.Phone,
		Email:                  d.Email,
		TaxNumber:              d.TaxNumber,
		IsActive:               d.IsActive,
		Salary:                 d.Salary,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:              m.AccountID,
		Title:                  m.Title,
		Kind:                   domain.AccountKind(m.Kind),
		CurrencyCode:           m.CurrencyCode,
		OpeningBalance:         m.OpeningBalance,
		OpeningBalanceCurrency: m.OpeningBalanceCurrency,
		Phone:                  m.Phone,
		Email:                  m.Email,
		TaxNumber:              m.TaxNumber,
		IsActive:               m.IsActive,
		Salary:                 m.Salary,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
