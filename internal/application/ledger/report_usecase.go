package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// ReportUseCase is the read side: rollups and activity views over the ledger.
// It never mutates the ledger and keeps no cached aggregates; every call is a
// fresh scan of the log, so correctness only depends on the current snapshot.
type ReportUseCase struct {
	entries repository.LedgerRepository
}

// NewReportUseCase builds the use case.
func NewReportUseCase(entries repository.LedgerRepository) *ReportUseCase {
	return &ReportUseCase{entries: entries}
}

// GlobalTotals sums revenue, damage and transaction count over the whole
// ledger. Admin only. An empty ledger yields zeros.
func (uc *ReportUseCase) GlobalTotals(actor Actor) (*dto.GlobalTotals, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	all, err := uc.entries.ListAll()
	if err != nil {
		return nil, err
	}
	totals := dto.GlobalTotals{TotalRevenue: decimal.Zero}
	for _, e := range all {
		totals.TotalRevenue = totals.TotalRevenue.Add(e.Amount)
		totals.TotalDamage += int64(e.Damage)
		totals.TransactionCount++
	}
	return &totals, nil
}

// HawkerTotals sums revenue, units sold and damage for one hawker's slice.
// Admins may ask for anyone, hawkers only for themselves.
func (uc *ReportUseCase) HawkerTotals(actor Actor, hawkerID string) (*dto.HawkerTotals, error) {
	if !actor.CanActFor(hawkerID) {
		return nil, domain.ErrForbidden
	}
	slice, err := uc.entries.ListByHawker(hawkerID)
	if err != nil {
		return nil, err
	}
	totals := dto.HawkerTotals{HawkerID: hawkerID, TotalRevenue: decimal.Zero}
	for _, e := range slice {
		totals.TotalRevenue = totals.TotalRevenue.Add(e.Amount)
		totals.TotalSold += int64(e.Sold)
		totals.TotalDamage += int64(e.Damage)
	}
	return &totals, nil
}

// RecentActivity returns the last n appended entries in insertion order.
// Insertion order is the contract, not date order: sheets may be submitted
// out of chronological sequence. Admin only.
func (uc *ReportUseCase) RecentActivity(actor Actor, n int) ([]dto.SalesEntryResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if n <= 0 {
		return nil, domain.ErrValidation
	}
	last, err := uc.entries.LastN(n)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(last), nil
}

// History returns all entries for one hawker in insertion order.
// Admins may ask for anyone, hawkers only for themselves.
func (uc *ReportUseCase) History(actor Actor, hawkerID string) ([]dto.SalesEntryResponse, error) {
	if !actor.CanActFor(hawkerID) {
		return nil, domain.ErrForbidden
	}
	slice, err := uc.entries.ListByHawker(hawkerID)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(slice), nil
}

func toEntryResponses(entries []*entity.SalesEntry) []dto.SalesEntryResponse {
	out := make([]dto.SalesEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}
