package mapping

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
)

// ToModelSalaryAccrual converts a domain SalaryAccrual to a model SalaryAccrual
func ToModelSalaryAccrual(d domain.SalaryAccrual) models.SalaryAccrual {
	return models.SalaryAccrual{
		AccrualID:   d.AccrualID,
		AccountID:   d.AccountID,
		PeriodMonth: d.PeriodMonth,
		PeriodYear:  d.PeriodYear,
		NetPayable:  d.NetPayable,
		AccrualDate: d.AccrualDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalaryAccrual converts a model SalaryAccrual to a domain SalaryAccrual
func ToDomainSalaryAccrual(m models.SalaryAccrual) domain.SalaryAccrual {
	return domain.SalaryAccrual{
		AccrualID:   m.AccrualID,
		AccountID:   m.AccountID,
		PeriodMonth: m.PeriodMonth,
		PeriodYear:  m.PeriodYear,
		NetPayable:  m.NetPayable,
		AccrualDate: m.AccrualDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
