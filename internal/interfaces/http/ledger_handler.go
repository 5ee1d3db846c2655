package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/application/ledger"
)

const defaultRecentEntries = 10

// LedgerHandler handles sheet submission and ledger views.
type LedgerHandler struct {
	submit  *ledger.SubmitSheetUseCase
	reports *ledger.ReportUseCase
}

// NewLedgerHandler builds the ledger handler.
func NewLedgerHandler(submit *ledger.SubmitSheetUseCase, reports *ledger.ReportUseCase) *LedgerHandler {
	return &LedgerHandler{submit: submit, reports: reports}
}

// SubmitSheet commits one vendor/date daily sheet. Admin for any hawker, or a
// hawker for themself.
// POST /api/ledger/sheets
func (h *LedgerHandler) SubmitSheet(c *fiber.Ctx) error {
	var in dto.SubmitSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.HawkerID == "" || in.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hawker_id and date are required"})
	}
	out, err := h.submit.SubmitDailySheet(c.Context(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Recent returns the last n appended entries in append order. Admin only.
// GET /api/ledger/recent?n=10
func (h *LedgerHandler) Recent(c *fiber.Ctx) error {
	n := defaultRecentEntries
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "n must be a positive integer"})
		}
		n = parsed
	}
	entries, err := h.reports.RecentActivity(GetActor(c), n)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(entries)
}

// History returns one hawker's full ledger slice in append order. Admin for
// any hawker, or a hawker for themself.
// GET /api/ledger/hawkers/:id
func (h *LedgerHandler) History(c *fiber.Ctx) error {
	entries, err := h.reports.History(GetActor(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(entries)
}
