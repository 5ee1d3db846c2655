package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zuberiservices/hawker-ledger/internal/application/dto"
	"github.com/zuberiservices/hawker-ledger/internal/domain"
)

// domainError maps domain errors to HTTP status + error body. Anything not in
// the taxonomy is a 500 (typically a wrapped persistence failure).
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTHENTICATION_FAILED", Message: "invalid username or password"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not allowed for this actor"})
	case errors.Is(err, domain.ErrDuplicateUsername):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_USERNAME", Message: "username already exists"})
	case errors.Is(err, domain.ErrDuplicateProduct):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_PRODUCT", Message: "product already exists"})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	case errors.Is(err, domain.ErrEmptySubmission):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SUBMISSION", Message: "sheet has no rows with movement"})
	case errors.Is(err, domain.ErrUnknownReference):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_REFERENCE", Message: "unknown product or hawker reference"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
