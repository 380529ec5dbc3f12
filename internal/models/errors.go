package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned to the transport layer. Each operation resolves to
// exactly one of these; the transport maps them to protocol status codes.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeAlreadyFriends     = "ALREADY_FRIENDS"
	CodeDuplicateRequest   = "DUPLICATE_REQUEST"
	CodeNoSuchRequest      = "NO_SUCH_REQUEST"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func NewAlreadyFriendsError() *AppError {
	return &AppError{Code: CodeAlreadyFriends, Message: "Already friends with this user"}
}

func NewDuplicateRequestError() *AppError {
	return &AppError{Code: CodeDuplicateRequest, Message: "Friend request already sent"}
}

func NewNoSuchRequestError() *AppError {
	return &AppError{Code: CodeNoSuchRequest, Message: "No friend request from this user"}
}

// NewStorageUnavailableError wraps a transport-level persistence failure.
// The underlying error is kept for logs but never serialized to clients.
func NewStorageUnavailableError(err error) *AppError {
	return &AppError{
		Code:    CodeStorageUnavailable,
		Message: "Storage temporarily unavailable",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusForCode maps an application error code to an HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict, CodeAlreadyFriends, CodeDuplicateRequest, CodeNoSuchRequest:
		return fiber.StatusConflict
	case CodeStorageUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes a standardized error response. Internal details
// (wrapped errors, storage messages) are deliberately left out of the body.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
