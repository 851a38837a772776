package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAccrual represents one monthly salary accrual. The database enforces
// UNIQUE(account_id, period_year, period_month).
type SalaryAccrual struct {
	AccrualID   string          `json:"accrualID"` // Primary Key (UUID)
	AccountID   string          `json:"accountID"`
	PeriodMonth int             `json:"periodMonth"`
	PeriodYear  int             `json:"periodYear"`
	NetPayable  decimal.Decimal `json:"netPayable"`
	AccrualDate time.Time       `json:"accrualDate"`
	AuditFields
}
