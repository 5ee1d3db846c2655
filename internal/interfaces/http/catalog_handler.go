package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/application/usecase"
)

// CatalogHandler handles product catalog endpoints.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the catalog handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List returns the catalog. Any authenticated user (hawkers need the rates to
// fill their sheets).
// GET /api/products
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(products)
}

// Add creates one product. Admin only.
// POST /api/products
func (h *CatalogHandler) Add(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	product, err := h.uc.Add(GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Replace swaps the entire catalog (bulk edit). Admin only.
// PUT /api/products
func (h *CatalogHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	products, err := h.uc.Replace(c.Context(), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(products)
}
