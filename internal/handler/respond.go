package handler

import (
	"errors"

	"go-store-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondError maps service error kinds to HTTP statuses: validation → 400
// (409 for duplicates), missing records/sessions → 404, store and commit
// failures → 500.
func respondError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrDuplicateRecord) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{"error": ve.Error()})
	}

	if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var ce *service.CommitError
	if errors.As(err, &ce) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ce.Error()})
	}

	var se *service.StoreError
	if errors.As(err, &se) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": se.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
