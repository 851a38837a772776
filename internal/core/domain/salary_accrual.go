package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAccrual is the document row recording that one employee's salary
// was accrued for one calendar month. The table carries a unique constraint
// on (account_id, period_year, period_month), which is what makes the
// accrual run idempotent even under concurrent requests.
type SalaryAccrual struct {
	AccrualID   string          `json:"accrualID"` // Primary Key (ULID)
	AccountID   string          `json:"accountID"` // FK -> Account (EMPLOYEE)
	PeriodMonth int             `json:"periodMonth"`
	PeriodYear  int             `json:"periodYear"`
	NetPayable  decimal.Decimal `json:"netPayable"`
	AccrualDate time.Time       `json:"accrualDate"` // The 28th of the period month
	AuditFields
}

// AccrualStatus reports the outcome of an accrual attempt for one employee.
type AccrualStatus string

const (
	AccrualSuccess AccrualStatus = "success"
	AccrualSkipped AccrualStatus = "skipped"
)

// AccrualResult is one row of an accrual run report.
type AccrualResult struct {
	AccountID  string          `json:"accountID"`
	Employee   string          `json:"employee"`
	Status     AccrualStatus   `json:"status"`
	NetPayable decimal.Decimal `json:"netPayable"`
}
