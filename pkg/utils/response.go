package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error shape the mobile client understands.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody is returned by delete-style endpoints.
type SuccessBody struct {
	Success bool `json:"success"`
}

// ========== Success Responses ==========

// SuccessResponse writes data as the response body with status 200.
func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func DeletedResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(SuccessBody{Success: true})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

func ValidationErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusBadRequest, "Validation fails")
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
