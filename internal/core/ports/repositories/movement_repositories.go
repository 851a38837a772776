package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementReader defines read operations over the movement stream.
type MovementReader interface {
	// FindMovements retrieves movements for an account in one currency,
	// optionally bounded by [from, to] (inclusive), ordered by
	// transaction date then movement ID ascending.
	FindMovements(ctx context.Context, accountID, currencyCode string, from, to *time.Time) ([]domain.Movement, error)

	// SumMovements returns the debit and credit totals for an account in
	// one currency, counting only movements strictly before `before` when
	// it is non-nil.
	SumMovements(ctx context.Context, accountID, currencyCode string, before *time.Time) (debit, credit decimal.Decimal, err error)

	// FindMovementsBySource retrieves the movements owned by one document.
	FindMovementsBySource(ctx context.Context, sourceKind domain.SourceKind, sourceID string) ([]domain.Movement, error)
}

// MovementWriter defines write operations on the movement stream. Both run
// inside the caller's transaction; movements are never written outside the
// transaction that writes their owning document.
type MovementWriter interface {
	// InsertMovementInTx appends one movement within the given transaction.
	InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error

	// DeleteMovementsBySourceInTx removes the movements owned by one
	// document within the given transaction.
	DeleteMovementsBySourceInTx(ctx context.Context, tx pgx.Tx, sourceKind domain.SourceKind, sourceID string) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
