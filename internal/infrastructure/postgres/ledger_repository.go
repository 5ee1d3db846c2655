package postgres

import (
	"context"
	"fmt"

	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const entryColumns = `id, seq, date, hawker_id, hawker_name, product, rate,
	load_out, load_in, damage, sold, amount, created_at`

// LedgerRepo implements the LedgerRepository port over PostgreSQL (pool or tx).
// Append-only: no UPDATE or DELETE statements exist against sales_entries.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository builds the persistence adapter for the sales ledger.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// AppendBatch inserts the batch and reads back the seq assigned to each row.
// Callers wanting all-or-nothing semantics run this inside a transaction.
func (r *LedgerRepo) AppendBatch(entries []*entity.SalesEntry) error {
	query := `
		INSERT INTO sales_entries (id, date, hawker_id, hawker_name, product, rate,
			load_out, load_in, damage, sold, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING seq`
	for _, e := range entries {
		err := r.q.QueryRow(context.Background(), query,
			e.ID, e.Date, e.HawkerID, e.HawkerName, e.Product, e.Rate,
			e.LoadOut, e.LoadIn, e.Damage, e.Sold, e.Amount, e.CreatedAt,
		).Scan(&e.Seq)
		if err != nil {
			return fmt.Errorf("append sales entry: %w", err)
		}
	}
	return nil
}

// ListAll returns the whole ledger in append order.
func (r *LedgerRepo) ListAll() ([]*entity.SalesEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM sales_entries ORDER BY seq`
	return r.list(query)
}

// ListByHawker returns one hawker's slice in append order.
func (r *LedgerRepo) ListByHawker(hawkerID string) ([]*entity.SalesEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM sales_entries WHERE hawker_id = $1 ORDER BY seq`
	return r.list(query, hawkerID)
}

// LastN returns the last n appended entries, oldest of the n first.
func (r *LedgerRepo) LastN(n int) ([]*entity.SalesEntry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM (
			SELECT ` + entryColumns + ` FROM sales_entries ORDER BY seq DESC LIMIT $1
		) tail ORDER BY seq`
	return r.list(query, n)
}

func (r *LedgerRepo) list(query string, args ...any) ([]*entity.SalesEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesEntry
	for rows.Next() {
		var e entity.SalesEntry
		if err := rows.Scan(
			&e.ID, &e.Seq, &e.Date, &e.HawkerID, &e.HawkerName, &e.Product, &e.Rate,
			&e.LoadOut, &e.LoadIn, &e.Damage, &e.Sold, &e.Amount, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sales entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
