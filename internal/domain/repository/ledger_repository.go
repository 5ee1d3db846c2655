package repository

import "github.com/zuberiservices/hawker-ledger/internal/domain/entity"

// LedgerRepository is the persistence port for the append-only sales ledger.
// There is no update or delete: committed entries are immutable.
// All list methods return entries in insertion (append) order.
type LedgerRepository interface {
	AppendBatch(entries []*entity.SalesEntry) error
	ListAll() ([]*entity.SalesEntry, error)
	ListByHawker(hawkerID string) ([]*entity.SalesEntry, error)
	// LastN returns the last n appended entries, oldest of the n first.
	LastN(n int) ([]*entity.SalesEntry, error)
}
