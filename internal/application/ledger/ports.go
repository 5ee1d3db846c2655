package ledger

import (
	"context"

	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// TxRunner runs a function inside a DB transaction, passing repositories
// bound to that transaction. It is what makes a sheet submission atomic:
// reference checks, rate snapshots and the batch append commit together or
// roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		products repository.ProductRepository,
		entries repository.LedgerRepository,
	) error) error
}
