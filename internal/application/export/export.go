// Package export serializes filtered ledger slices to portable report
// artifacts (CSV and PDF). It only reads; filtering and ordering are done by
// the ledger read side before the rows reach an exporter.
package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/application/ledger"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// csvRow mirrors the persisted ledger schema, column for column and in order.
type csvRow struct {
	Date    string `csv:"Date"`
	Hawker  string `csv:"Hawker"`
	Product string `csv:"Product"`
	Rate    string `csv:"Rate"`
	LoadOut int    `csv:"Load_Out"`
	LoadIn  int    `csv:"Load_In"`
	Damage  int    `csv:"Damage"`
	Sold    int    `csv:"Sold"`
	Amount  string `csv:"Amount"`
}

// HawkerReportPDFGenerator renders one hawker's report as a PDF document.
// Implemented in infrastructure (maroto).
type HawkerReportPDFGenerator interface {
	GenerateHawkerReport(hawkerName string, entries []*entity.SalesEntry, totals dto.HawkerTotals) ([]byte, error)
}

// ExportUseCase produces downloadable report artifacts from the ledger.
type ExportUseCase struct {
	entries repository.LedgerRepository
	users   repository.UserRepository
	pdf     HawkerReportPDFGenerator
}

// NewExportUseCase builds the use case.
func NewExportUseCase(entries repository.LedgerRepository, users repository.UserRepository, pdf HawkerReportPDFGenerator) *ExportUseCase {
	return &ExportUseCase{entries: entries, users: users, pdf: pdf}
}

// ExportAllCSV serializes the full ledger in append order. Admin only.
func (uc *ExportUseCase) ExportAllCSV(actor ledger.Actor) ([]byte, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	all, err := uc.entries.ListAll()
	if err != nil {
		return nil, err
	}
	return MarshalCSV(all)
}

// ExportHawkerCSV serializes one hawker's slice in append order.
// Admins may export anyone's, hawkers only their own.
func (uc *ExportUseCase) ExportHawkerCSV(actor ledger.Actor, hawkerID string) ([]byte, error) {
	if !actor.CanActFor(hawkerID) {
		return nil, domain.ErrForbidden
	}
	slice, err := uc.entries.ListByHawker(hawkerID)
	if err != nil {
		return nil, err
	}
	return MarshalCSV(slice)
}

// ExportHawkerPDF renders one hawker's report (totals + detail table) as PDF.
// Admins may export anyone's, hawkers only their own.
func (uc *ExportUseCase) ExportHawkerPDF(actor ledger.Actor, hawkerID string) ([]byte, error) {
	if !actor.CanActFor(hawkerID) {
		return nil, domain.ErrForbidden
	}
	hawker, err := uc.users.GetByID(hawkerID)
	if err != nil {
		return nil, err
	}
	if hawker == nil || !hawker.IsHawker() {
		return nil, domain.ErrUnknownReference
	}
	slice, err := uc.entries.ListByHawker(hawkerID)
	if err != nil {
		return nil, err
	}
	totals := dto.HawkerTotals{HawkerID: hawkerID}
	for _, e := range slice {
		totals.TotalRevenue = totals.TotalRevenue.Add(e.Amount)
		totals.TotalSold += int64(e.Sold)
		totals.TotalDamage += int64(e.Damage)
	}
	return uc.pdf.GenerateHawkerReport(hawker.DisplayName, slice, totals)
}

// MarshalCSV writes an already-filtered, already-ordered sequence of entries
// in the ledger's column schema. The order of the input is preserved.
func MarshalCSV(entries []*entity.SalesEntry) ([]byte, error) {
	rows := make([]csvRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, csvRow{
			Date:    e.Date.Format("2006-01-02"),
			Hawker:  e.HawkerName,
			Product: e.Product,
			Rate:    e.Rate.String(),
			LoadOut: e.LoadOut,
			LoadIn:  e.LoadIn,
			Damage:  e.Damage,
			Sold:    e.Sold,
			Amount:  e.Amount.String(),
		})
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("export: marshal csv: %w", err)
	}
	return out, nil
}
