package services

import (
	"context"
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the ledger engine surface. Document workflows use
// PrepareMovement to build validated movements; the repository layer then
// appends them inside the workflow's transaction. Balances and statements
// are always derived on read, never cached.
type LedgerSvcFacade interface {
	// PrepareMovement validates the input (positive amount, known account,
	// known currency, resolvable direction) and constructs the immutable
	// movement; it performs no writes.
	PrepareMovement(ctx context.Context, in dto.RecordMovementInput) (domain.Movement, error)

	// GetBalance computes the signed balance for one account and currency:
	// sum of debits minus sum of credits over the whole history.
	GetBalance(ctx context.Context, accountID, currencyCode string) (decimal.Decimal, error)

	// BuildStatement replays an account's movements in one currency over an
	// optional date window, producing the carried-forward opening line (when
	// from is set) followed by one line per movement with running balances.
	BuildStatement(ctx context.Context, accountID, currencyCode string, from, to *time.Time) ([]domain.StatementLine, error)

	// MovementsForSource retrieves the movements a document produced, in
	// insertion order.
	MovementsForSource(ctx context.Context, sourceKind domain.SourceKind, sourceID string) ([]domain.Movement, error)
}
