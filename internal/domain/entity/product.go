package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item the business distributes. Name is the unique key.
// Rate is the current selling rate; committed ledger entries carry their own
// frozen rate, so editing Rate never rewrites history.
type Product struct {
	ID        string
	Name      string
	Rate      decimal.Decimal // positive
	CreatedAt time.Time
	UpdatedAt time.Time
}
