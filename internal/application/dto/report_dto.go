package dto

import "github.com/shopspring/decimal"

// GlobalTotals business-wide rollup over the whole ledger.
type GlobalTotals struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalDamage      int64           `json:"total_damage"`
	TransactionCount int             `json:"transaction_count"`
}

// HawkerTotals rollup over one hawker's ledger slice.
type HawkerTotals struct {
	HawkerID     string          `json:"hawker_id"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSold    int64           `json:"total_sold"`
	TotalDamage  int64           `json:"total_damage"`
}

// SummaryResponse the business overview: global totals plus the most recent
// transactions in append order.
type SummaryResponse struct {
	Totals GlobalTotals         `json:"totals"`
	Recent []SalesEntryResponse `json:"recent"`
}
