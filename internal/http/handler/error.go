package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"examdocs/internal/http/middleware"
	"examdocs/internal/model"
	"examdocs/internal/roster"
	"examdocs/internal/service"
	"examdocs/internal/session"
	"examdocs/internal/spreadsheet"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "SESSION_NOT_FOUND", "CAPACITY_MISMATCH")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates domain errors into their HTTP status and code.
// Only the messages of user-facing domain errors are passed through.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, roster.ErrCapacityMismatch):
		return writeError(c, fiber.StatusUnprocessableEntity, "CAPACITY_MISMATCH", err.Error())
	case errors.Is(err, service.ErrNoRooms):
		return writeError(c, fiber.StatusUnprocessableEntity, "NO_ROOMS", "at least one room is required")
	case errors.Is(err, model.ErrMissingFields):
		return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", err.Error())
	case errors.Is(err, spreadsheet.ErrMalformedTable):
		return writeError(c, fiber.StatusBadRequest, "MALFORMED_TABLE", err.Error())
	case errors.Is(err, spreadsheet.ErrUnreadable):
		return writeError(c, fiber.StatusBadRequest, "UNREADABLE_FILE", "file is not a readable xlsx workbook")
	case errors.Is(err, session.ErrSessionNotFound):
		return writeError(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", "session not found")
	case errors.Is(err, session.ErrDuplicateRoom):
		return writeError(c, fiber.StatusConflict, "DUPLICATE_ROOM", err.Error())
	case errors.Is(err, session.ErrRoomNameRequired), errors.Is(err, session.ErrInvalidCapacity):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ROOM", err.Error())
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "bundle not found")
	case errors.Is(err, service.ErrArchiveDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "ARCHIVE_DISABLED", "bundle archive is disabled")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "FILE_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
