package handlers

import (
	"errors"
	"log"

	"storefront/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error to an HTTP status with a generic public
// message. The raw error is logged; it is never returned to the client.
func respondError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "insufficient stock"})
	case errors.Is(err, apperrors.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// respondBadRequest answers a malformed or invalid request body.
func respondBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
