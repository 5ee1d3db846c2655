// Package ledger implements the sales reconciliation engine (write side) and
// the aggregation service (read side) over the append-only sales ledger.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// SubmitSheetUseCase turns one vendor/date batch of raw movement rows into
// committed ledger entries.
//
// Resubmitting the same (date, hawker, product) is not deduplicated or merged:
// it appends more rows and totals accumulate. The ledger stays a plain append
// log; preventing double entry is an upstream concern.
type SubmitSheetUseCase struct {
	tx TxRunner
}

// NewSubmitSheetUseCase builds the use case.
func NewSubmitSheetUseCase(tx TxRunner) *SubmitSheetUseCase {
	return &SubmitSheetUseCase{tx: tx}
}

// SubmitDailySheet validates and commits a daily sheet as a single atomic
// batch.
//
//  1. The actor must be an admin or the hawker themself, else ErrForbidden.
//  2. Any negative quantity fails the whole submission with ErrValidation;
//     nothing is written.
//  3. Rows with no movement at all (out = in = damage = 0) are dropped.
//  4. Each retained row snapshots the product's current rate and derives
//     Sold and Amount.
//  5. All rows commit in one transaction, or none do.
func (uc *SubmitSheetUseCase) SubmitDailySheet(ctx context.Context, actor Actor, in dto.SubmitSheetRequest) (*dto.SubmitSheetResponse, error) {
	if !actor.CanActFor(in.HawkerID) {
		return nil, domain.ErrForbidden
	}
	for _, row := range in.Rows {
		if row.LoadOut < 0 || row.LoadIn < 0 || row.Damage < 0 {
			return nil, domain.ErrValidation
		}
	}

	retained := make([]dto.SheetRow, 0, len(in.Rows))
	for _, row := range in.Rows {
		if row.LoadOut != 0 || row.LoadIn != 0 || row.Damage != 0 {
			retained = append(retained, row)
		}
	}
	if len(retained) == 0 {
		if in.RequireNonEmpty {
			return nil, domain.ErrEmptySubmission
		}
		return &dto.SubmitSheetResponse{Committed: 0, Entries: []dto.SalesEntryResponse{}}, nil
	}

	var committed []*entity.SalesEntry
	err := uc.tx.Run(ctx, func(
		users repository.UserRepository,
		products repository.ProductRepository,
		entries repository.LedgerRepository,
	) error {
		hawker, err := users.GetByID(in.HawkerID)
		if err != nil {
			return err
		}
		if hawker == nil || !hawker.IsHawker() {
			return domain.ErrUnknownReference
		}

		now := time.Now()
		batch := make([]*entity.SalesEntry, 0, len(retained))
		for _, row := range retained {
			product, err := products.GetByName(row.Product)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrUnknownReference
			}
			e := &entity.SalesEntry{
				ID:         uuid.New().String(),
				Date:       in.Date,
				HawkerID:   hawker.ID,
				HawkerName: hawker.DisplayName,
				Product:    product.Name,
				Rate:       product.Rate, // frozen here; later rate edits never touch this row
				LoadOut:    row.LoadOut,
				LoadIn:     row.LoadIn,
				Damage:     row.Damage,
				CreatedAt:  now,
			}
			e.Derive()
			batch = append(batch, e)
		}

		if err := entries.AppendBatch(batch); err != nil {
			return err
		}
		committed = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.SalesEntryResponse, 0, len(committed))
	for _, e := range committed {
		out = append(out, toEntryResponse(e))
	}
	return &dto.SubmitSheetResponse{Committed: len(out), Entries: out}, nil
}

func toEntryResponse(e *entity.SalesEntry) dto.SalesEntryResponse {
	return dto.SalesEntryResponse{
		ID:         e.ID,
		Seq:        e.Seq,
		Date:       e.Date,
		HawkerID:   e.HawkerID,
		HawkerName: e.HawkerName,
		Product:    e.Product,
		Rate:       e.Rate,
		LoadOut:    e.LoadOut,
		LoadIn:     e.LoadIn,
		Damage:     e.Damage,
		Sold:       e.Sold,
		Amount:     e.Amount,
		CreatedAt:  e.CreatedAt,
	}
}
