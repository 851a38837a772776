package dto

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccrueSalariesRequest defines the payload for a monthly accrual run.
// AccountID, when set, restricts the run to one employee.
type AccrueSalariesRequest struct {
	Month     int     `json:"month" binding:"required,min=1,max=12"`
	Year      int     `json:"year" binding:"required,min=2000,max=2100"`
	AccountID *string `json:"accountID"`
}

// AccrualResultResponse is one row of the accrual run report.
type AccrualResultResponse struct {
	AccountID  string          `json:"accountID"`
	Employee   string          `json:"employee"`
	Status     string          `json:"status"`
	NetPayable decimal.Decimal `json:"netPayable"`
}

// ToAccrualResultResponses converts domain accrual results.
func ToAccrualResultResponses(results []domain.AccrualResult) []AccrualResultResponse {
	out := make([]AccrualResultResponse, len(results))
	for i, r := range results {
		out[i] = AccrualResultResponse{
			AccountID:  r.AccountID,
			Employee:   r.Employee,
			Status:     string(r.Status),
			NetPayable: r.NetPayable,
		}
	}
	return out
}
