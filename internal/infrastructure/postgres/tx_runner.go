package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zuberiservices/hawker-ledger/internal/application/ledger"
	"github.com/zuberiservices/hawker-ledger/internal/application/usecase"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and usecase.CatalogTxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction. Mutating
// operations go through here so each one is all-or-nothing; concurrent
// writers serialize on the database rather than on a whole-snapshot
// read-modify-write cycle.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, calls fn with tx-bound repos and commits, or
// rolls back if fn errors.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	products repository.ProductRepository,
	entries repository.LedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewProductRepository(tx), NewLedgerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog starts a transaction with only the catalog repo bound (for the
// whole-set replace).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
