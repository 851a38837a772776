package accounting

import (
	"fmt"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// BusinessEvent names the ledger-affecting operations. Each maps to a
// movement direction through directionTable so the DEBIT/CREDIT convention
// lives in exactly one place.
type BusinessEvent string

const (
	EventSale           BusinessEvent = "SALE"            // sales slip to a customer
	EventPurchase       BusinessEvent = "PURCHASE"        // purchase invoice from a supplier
	EventCollection     BusinessEvent = "COLLECTION"      // money collected from a counterparty
	EventPayment        BusinessEvent = "PAYMENT"         // money paid to a counterparty
	EventSalaryAccrual  BusinessEvent = "SALARY_ACCRUAL"  // monthly salary owed to an employee
	EventOpeningBalance BusinessEvent = "OPENING_BALANCE" // account creation seed
)

// directionTable encodes the sign convention:
//
//	SALE            -> DEBIT  (customer owes more)
//	PURCHASE        -> CREDIT (we owe the supplier more)
//	COLLECTION      -> CREDIT (counterparty owes less)
//	PAYMENT         -> DEBIT  (we owe less / employee has been paid)
//	SALARY_ACCRUAL  -> CREDIT (company owes the employee more)
//	OPENING_BALANCE -> DEBIT for customers/employees, CREDIT for suppliers
var directionTable = map[BusinessEvent]domain.Direction{
	EventSale:          domain.Debit,
	EventPurchase:      domain.Credit,
	EventCollection:    domain.Credit,
	EventPayment:       domain.Debit,
	EventSalaryAccrual: domain.Credit,
}

// DirectionFor resolves the movement direction for a business event posted
// against an account of the given kind.
func DirectionFor(event BusinessEvent, kind domain.AccountKind) (domain.Direction, error) {
	if event == EventOpeningBalance {
		switch kind {
		case domain.Customer, domain.Employee:
			return domain.Debit, nil
		case domain.Supplier:
			return domain.Credit, nil
		default:
			return "", fmt.Errorf("unknown account kind '%s' for opening balance", kind)
		}
	}
	dir, ok := directionTable[event]
	if !ok {
		return "", fmt.Errorf("unknown business event '%s'", event)
	}
	return dir, nil
}
