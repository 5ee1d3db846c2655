package dto

import "github.com/shopspring/decimal"

// AddProductRequest input for adding one catalog item.
type AddProductRequest struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// ReplaceCatalogRequest input for the whole-set catalog replace (bulk edit).
// The entire product set is swapped atomically; there is no row-level merge.
type ReplaceCatalogRequest struct {
	Products []AddProductRequest `json:"products"`
}

// ProductResponse a catalog item.
type ProductResponse struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}
