package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zuberiservices/hawker-ledger/internal/application/auth"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
)

// AuthHandler handles login and hawker management.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authenticates and returns a JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username and password are required"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// RegisterHawker registers a field vendor. Admin only.
// POST /api/hawkers
func (h *AuthHandler) RegisterHawker(c *fiber.Ctx) error {
	var in dto.RegisterHawkerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username and password are required"})
	}
	user, err := h.uc.RegisterHawker(GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListHawkers lists registered hawkers. Admin only.
// GET /api/hawkers
func (h *AuthHandler) ListHawkers(c *fiber.Ctx) error {
	hawkers, err := h.uc.ListHawkers(GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(hawkers)
}
