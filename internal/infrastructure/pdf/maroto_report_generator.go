// Package pdf renders per-hawker sales reports with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: business name          │  report title + date      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: revenue | units sold | damaged                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Date | Product | Rate | Out | In | Dmg | Sold | Amt │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/application/export"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ export.HawkerReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements export.HawkerReportPDFGenerator.
type MarotoReportGenerator struct {
	businessName string
}

// NewMarotoReportGenerator builds the generator. businessName heads each report.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// GenerateHawkerReport renders the report and returns its bytes. Entries are
// expected in append order, already filtered to the hawker.
func (g *MarotoReportGenerator) GenerateHawkerReport(hawkerName string, entries []*entity.SalesEntry, totals dto.HawkerTotals) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hawker Sales Report", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, hawkerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, e := range entries {
		m.AddRows(detailRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business name (left), report title + generation date (right).
func headerRow(businessName, hawkerName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Hawker: "+hawkerName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SALES RECONCILIATION REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generated: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// totalsRow: the three rollup metrics side by side.
func totalsRow(totals dto.HawkerTotals) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		metric("TOTAL REVENUE", "Rs. "+totals.TotalRevenue.StringFixed(2)),
		metric("UNITS SOLD", fmt.Sprintf("%d", totals.TotalSold)),
		metric("DAMAGED", fmt.Sprintf("%d", totals.TotalDamage)),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		header(2, "Date", align.Left),
		header(3, "Product", align.Left),
		header(1, "Rate", align.Right),
		header(1, "Out", align.Right),
		header(1, "In", align.Right),
		header(1, "Dmg", align.Right),
		header(1, "Sold", align.Right),
		header(2, "Amount", align.Right),
	)
}

func detailRow(e *entity.SalesEntry) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(5).Add(
		cell(2, e.Date.Format("02/01/2006"), align.Left),
		cell(3, e.Product, align.Left),
		cell(1, e.Rate.String(), align.Right),
		cell(1, fmt.Sprintf("%d", e.LoadOut), align.Right),
		cell(1, fmt.Sprintf("%d", e.LoadIn), align.Right),
		cell(1, fmt.Sprintf("%d", e.Damage), align.Right),
		cell(1, fmt.Sprintf("%d", e.Sold), align.Right),
		cell(2, e.Amount.StringFixed(2), align.Right),
	)
}
