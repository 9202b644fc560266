package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the wire shape of every error response
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Pagination describes one page of a larger result set
type Pagination struct {
	Total   int64 `json:"total"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"hasMore"`
}

// Envelope wraps a page of rows with its pagination metadata
type Envelope struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// NewEnvelope builds the paginated envelope; hasMore is true iff rows remain
// past the requested window
func NewEnvelope(data interface{}, total int64, offset, limit int) Envelope {
	return Envelope{
		Data: data,
		Pagination: Pagination{
			Total:   total,
			Offset:  offset,
			Limit:   limit,
			HasMore: total > int64(offset+limit),
		},
	}
}

// Success returns a 200 response with the data wrapped in a data field
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// SuccessWithMessage returns a 200 response with data and a message
func SuccessWithMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data, "message": message})
}

// Created returns a 201 Created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data, "message": message})
}

// Error returns an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// ErrorWithDetails returns an error response carrying the underlying cause
func ErrorWithDetails(c *fiber.Ctx, statusCode int, message string, details string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message, Details: details})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// BadRequestWithDetails returns a 400 response naming the offending fields
func BadRequestWithDetails(c *fiber.Ctx, message string, details string) error {
	return ErrorWithDetails(c, fiber.StatusBadRequest, message, details)
}

// Unauthorized returns a 401 Unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden returns a 403 Forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict returns a 409 Conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// TooManyRequests returns a 429 Too Many Requests response
func TooManyRequests(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Too many requests"
	}
	return Error(c, fiber.StatusTooManyRequests, message)
}

// InternalServerError returns a 500 Internal Server Error response
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return Error(c, fiber.StatusInternalServerError, message)
}

// InternalServerErrorWithDetails returns a 500 response with the underlying
// error message attached for diagnostics
func InternalServerErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	return ErrorWithDetails(c, fiber.StatusInternalServerError, message, err.Error())
}
