package accounting

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SignedAmount applies the uniform sign convention to a movement amount:
// DEBIT is positive, CREDIT is negative. This is the single rule every
// balance and statement computation folds over.
func SignedAmount(direction domain.Direction, amount decimal.Decimal) decimal.Decimal {
	if direction == domain.Credit {
		return amount.Neg()
	}
	return amount
}

// LineTotal computes one document line: quantity × unit price, minus the
// document-level discount percentage, plus the line's VAT percentage.
// Intermediate values keep full decimal precision.
func LineTotal(quantity, unitPrice, discountRate, vatRate decimal.Decimal) decimal.Decimal {
	gross := quantity.Mul(unitPrice)
	if discountRate.IsPositive() {
		gross = gross.Mul(hundred.Sub(discountRate)).Div(hundred)
	}
	if vatRate.IsPositive() {
		gross = gross.Mul(hundred.Add(vatRate)).Div(hundred)
	}
	return gross
}

// DocumentTotal sums line totals and rounds to 2 decimal places; this is
// the amount materialized into the owning movement.
func DocumentTotal(lineTotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, lt := range lineTotals {
		total = total.Add(lt)
	}
	return total.Round(2)
}

// BaseEquivalent converts a document-currency amount to its TL equivalent
// using the rate snapshot. Used for display only; balances stay partitioned
// by currency and are never summed across currencies.
func BaseEquivalent(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}
