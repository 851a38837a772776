package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice (lines excluded)
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:    d.InvoiceID,
		SupplierID:   d.SupplierID,
		InvoiceNo:    d.InvoiceNo,
		InvoiceDate:  d.InvoiceDate,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		DiscountRate: d.DiscountRate,
		Total:        d.Total,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice and its lines to a domain Invoice
func ToDomainInvoice(m models.Invoice, lines []models.InvoiceLine) domain.Invoice {
	domainLines := make([]domain.InvoiceLine, len(lines))
	for i, l := range lines {
		domainLines[i] = ToDomainInvoiceLine(l)
	}
	return domain.Invoice{
		InvoiceID:    m.InvoiceID,
		SupplierID:   m.SupplierID,
		InvoiceNo:    m.InvoiceNo,
		InvoiceDate:  m.InvoiceDate,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		DiscountRate: m.DiscountRate,
		Total:        m.Total,
		Description:  m.Description,
		Lines:        domainLines,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceLine converts a domain InvoiceLine to a model InvoiceLine
func ToModelInvoiceLine(d domain.InvoiceLine) models.InvoiceLine {
	return models.InvoiceLine{
		LineID:      d.LineID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		VATRate:     d.VATRate,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainInvoiceLine converts a model InvoiceLine to a domain InvoiceLine
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		LineID:      m.LineID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		VATRate:     m.VATRate,
		LineTotal:   m.LineTotal,
	}
}
