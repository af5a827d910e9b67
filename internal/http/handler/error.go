package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pagebuilder/internal/codec"
	"pagebuilder/internal/http/middleware"
	"pagebuilder/internal/logging"
	"pagebuilder/internal/service"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiError struct {
	status  int
	code    string
	message string
}

// serviceErrors lists the service sentinels that are safe to surface.
var serviceErrors = []struct {
	err error
	api apiError
}{
	{service.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "page not found"}},
	{service.ErrIDRequired, apiError{fiber.StatusBadRequest, "INVALID_ID", "id is required"}},
	{service.ErrInvalidBlockType, apiError{fiber.StatusBadRequest, "INVALID_BLOCK_TYPE", "unknown block type"}},
	{service.ErrInvalidDirection, apiError{fiber.StatusBadRequest, "INVALID_DIRECTION", "direction must be up or down"}},
	{service.ErrInvalidArchiveKey, apiError{fiber.StatusBadRequest, "INVALID_ARCHIVE_KEY", "invalid archive key"}},
	{service.ErrArchiveDisabled, apiError{fiber.StatusNotImplemented, "ARCHIVE_DISABLED", "archive storage is not configured"}},
	{service.ErrCorruptPage, apiError{fiber.StatusInternalServerError, "CORRUPT_PAGE", "stored page could not be read"}},
}

// fiberErrors maps router and body-limit failures onto error codes.
var fiberErrors = map[int]string{
	fiber.StatusBadRequest:            "BAD_REQUEST",
	fiber.StatusNotFound:              "NOT_FOUND",
	fiber.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	fiber.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
}

func requestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return id
}

// writeError writes the error envelope. message must never carry internal detail.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeServiceError maps service errors onto the error envelope. Import
// failures describe what was wrong with the document; anything unrecognized
// is logged and reported as a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			if se.api.status == fiber.StatusInternalServerError {
				logging.FromContext(c.UserContext()).Error("request failed", "err", err)
			}
			return writeError(c, se.api.status, se.api.code, se.api.message)
		}
	}

	var ie *codec.ImportError
	if errors.As(err, &ie) {
		return writeError(c, fiber.StatusBadRequest, "IMPORT_FAILED", ie.Error())
	}

	logging.FromContext(c.UserContext()).Error("request failed", "err", err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler is the fiber error handler for errors that escape a handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if code, ok := fiberErrors[fe.Code]; ok {
				return writeError(c, fe.Code, code, fe.Message)
			}
		} else {
			logging.FromContext(c.UserContext()).Error("unhandled error", "err", err)
		}
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
