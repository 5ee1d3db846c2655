package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/application/export"
	"github.com/zuberiservices/hawker-ledger/internal/application/ledger"
)

// ReportHandler handles rollups and downloadable reports.
type ReportHandler struct {
	reports  *ledger.ReportUseCase
	exporter *export.ExportUseCase
}

// NewReportHandler builds the report handler.
func NewReportHandler(reports *ledger.ReportUseCase, exporter *export.ExportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, exporter: exporter}
}

// Summary returns the business overview: global totals plus the recent tail.
// Admin only.
// GET /api/reports/summary
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	actor := GetActor(c)
	totals, err := h.reports.GlobalTotals(actor)
	if err != nil {
		return domainError(c, err)
	}
	recent, err := h.reports.RecentActivity(actor, defaultRecentEntries)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SummaryResponse{Totals: *totals, Recent: recent})
}

// HawkerTotals returns one hawker's rollup. Admin for any hawker, or a hawker
// for themself.
// GET /api/reports/hawkers/:id
func (h *ReportHandler) HawkerTotals(c *fiber.Ctx) error {
	totals, err := h.reports.HawkerTotals(GetActor(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(totals)
}

// ExportAll downloads the full ledger as CSV. Admin only.
// GET /api/reports/export
func (h *ReportHandler) ExportAll(c *fiber.Ctx) error {
	data, err := h.exporter.ExportAllCSV(GetActor(c))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.csv"`)
	return c.Send(data)
}

// ExportHawker downloads one hawker's report as CSV (default) or PDF.
// Admin for any hawker, or a hawker for themself.
// GET /api/reports/hawkers/:id/export?format=csv|pdf
func (h *ReportHandler) ExportHawker(c *fiber.Ctx) error {
	actor := GetActor(c)
	hawkerID := c.Params("id")

	switch c.Query("format", "csv") {
	case "csv":
		data, err := h.exporter.ExportHawkerCSV(actor, hawkerID)
		if err != nil {
			return domainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="hawker_report.csv"`)
		return c.Send(data)
	case "pdf":
		data, err := h.exporter.ExportHawkerPDF(actor, hawkerID)
		if err != nil {
			return domainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="hawker_report.pdf"`)
		return c.Send(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format must be csv or pdf"})
	}
}
