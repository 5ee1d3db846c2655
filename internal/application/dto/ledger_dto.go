package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SheetRow one raw movement line of a daily sheet: product plus the three
// counted quantities. Sold and Amount are derived server-side, never accepted
// from the client.
type SheetRow struct {
	Product string `json:"product"`
	LoadOut int    `json:"load_out"`
	LoadIn  int    `json:"load_in"`
	Damage  int    `json:"damage"`
}

// SubmitSheetRequest one vendor/date reconciliation submission.
// RequireNonEmpty makes a sheet whose rows all drop out (no movement) an
// error instead of a zero-row commit.
type SubmitSheetRequest struct {
	HawkerID        string     `json:"hawker_id"`
	Date            time.Time  `json:"date"`
	Rows            []SheetRow `json:"rows"`
	RequireNonEmpty bool       `json:"require_non_empty"`
}

// SubmitSheetResponse result of a committed submission.
type SubmitSheetResponse struct {
	Committed int                  `json:"committed"`
	Entries   []SalesEntryResponse `json:"entries"`
}

// SalesEntryResponse one immutable ledger row.
type SalesEntryResponse struct {
	ID         string          `json:"id"`
	Seq        int64           `json:"seq"`
	Date       time.Time       `json:"date"`
	HawkerID   string          `json:"hawker_id"`
	HawkerName string          `json:"hawker_name"`
	Product    string          `json:"product"`
	Rate       decimal.Decimal `json:"rate"`
	LoadOut    int             `json:"load_out"`
	LoadIn     int             `json:"load_in"`
	Damage     int             `json:"damage"`
	Sold       int             `json:"sold"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}
