package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines the operations for repositories that can open
// database transactions. Document repositories use it to run their
// document+movement writes atomically; the ledger engine itself only ever
// joins a caller's transaction through the ...InTx methods.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
