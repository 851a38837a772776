package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelSalesSlip converts a domain SalesSlip to a model SalesSlip (lines excluded)
func ToModelSalesSlip(d domain.SalesSlip) models.SalesSlip {
	return models.SalesSlip{
		SalesSlipID:  d.SalesSlipID,
		CustomerID:   d.CustomerID,
		SlipDate:     d.SlipDate,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		Total:        d.Total,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesSlip converts a model SalesSlip and its lines to a domain SalesSlip
func ToDomainSalesSlip(m models.SalesSlip, lines []models.SalesSlipLine) domain.SalesSlip {
	domainLines := make([]domain.SalesSlipLine, len(lines))
	for i, l := range lines {
		domainLines[i] = ToDomainSalesSlipLine(l)
	}
	return domain.SalesSlip{
		SalesSlipID:  m.SalesSlipID,
		CustomerID:   m.CustomerID,
		SlipDate:     m.SlipDate,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		Total:        m.Total,
		Description:  m.Description,
		Lines:        domainLines,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSalesSlipLine converts a domain SalesSlipLine to a model SalesSlipLine
func ToModelSalesSlipLine(d domain.SalesSlipLine) models.SalesSlipLine {
	return models.SalesSlipLine{
		LineID:      d.LineID,
		SalesSlipID: d.SalesSlipID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		VATRate:     d.VATRate,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainSalesSlipLine converts a model SalesSlipLine to a domain SalesSlipLine
func ToDomainSalesSlipLine(m models.SalesSlipLine) domain.SalesSlipLine {
	return domain.SalesSlipLine{
		LineID:      m.LineID,
		SalesSlipID: m.SalesSlipID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		VATRate:     m.VATRate,
		LineTotal:   m.LineTotal,
	}
}
