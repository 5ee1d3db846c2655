package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesEntry is one immutable ledger row: the reconciled movement of one
// product for one hawker on one date. Entries are never updated or deleted;
// aggregates are always re-derived by scanning the full log.
//
// Seq is assigned by the store on append and defines insertion order, which is
// the ordering contract for history and recent-activity views (dates may
// arrive out of chronological order).
type SalesEntry struct {
	ID         string
	Seq        int64
	Date       time.Time
	HawkerID   string
	HawkerName string // display name snapshot, used by exports
	Product    string
	Rate       decimal.Decimal // rate snapshot at submission time
	LoadOut    int
	LoadIn     int
	Damage     int
	Sold       int
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// Derive fills the computed fields from the raw movement:
//
//	Sold   = LoadOut - LoadIn - Damage
//	Amount = Sold * Rate
//
// Sold may come out negative when a hawker returns more than was loaded out;
// that is an operator-input anomaly and is recorded as-is, not rejected.
func (e *SalesEntry) Derive() {
	e.Sold = e.LoadOut - e.LoadIn - e.Damage
	e.Amount = e.Rate.Mul(decimal.NewFromInt(int64(e.Sold)))
}

// HasMovement reports whether at least one of the raw quantities is nonzero.
// All-zero rows are dropped before commit so the ledger holds no no-op rows.
func (e *SalesEntry) HasMovement() bool {
	return e.LoadOut != 0 || e.LoadIn != 0 || e.Damage != 0
}
