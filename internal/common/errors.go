package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Stable classification codes surfaced to callers.
const (
	CodeValidation        = "VALIDATION"
	CodePathTraversal     = "PATH_TRAVERSAL"
	CodeInvalidIdentifier = "INVALID_IDENTIFIER"
	CodeNotFound          = "NOT_FOUND"
	CodeAlreadyProcessing = "ALREADY_PROCESSING"
	CodeAlreadyApproved   = "ALREADY_APPROVED"
	CodeTimeout           = "TIMEOUT"
	CodeExtraction        = "EXTRACTION_FAILURE"
	CodeInvalidAmount     = "INVALID_AMOUNT"
	CodeInvalidState      = "INVALID_STATE"
	CodeDenied            = "DENIED"
	CodeInternal          = "INTERNAL"
)

// AppError is the application error carrying a stable classification code.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError builds an AppError with an arbitrary code.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func ValidationError(format string, args ...any) *AppError {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(resource, ref string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", resource, ref)}
}

func PathTraversalError(message string) *AppError {
	return &AppError{Code: CodePathTraversal, Message: message}
}

func InvalidIdentifierError(message string) *AppError {
	return &AppError{Code: CodeInvalidIdentifier, Message: message}
}

func TimeoutError(message string, cause error) *AppError {
	return &AppError{Code: CodeTimeout, Message: message, Cause: cause}
}

func ExtractionError(message string, cause error) *AppError {
	return &AppError{Code: CodeExtraction, Message: message, Cause: cause}
}

// CodeOf returns the classification code of err, or CodeInternal when the
// error is not an AppError.
func CodeOf(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given classification code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// IsRetryable reports whether the orchestrator's backoff loop may retry err.
// Only timeouts and engine-level extraction failures qualify; validation,
// not-found and state-conflict errors are surfaced immediately.
func IsRetryable(err error) bool {
	switch CodeOf(err) {
	case CodeTimeout, CodeExtraction:
		return true
	}
	return false
}

// GRPCStatus maps an application error to a gRPC status for the server
// boundary. The classification code stays in the status message so clients
// receive a stable string.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	switch CodeOf(err) {
	case CodeValidation, CodeInvalidIdentifier, CodeInvalidAmount:
		code = codes.InvalidArgument
	case CodeNotFound:
		code = codes.NotFound
	case CodeAlreadyProcessing, CodeAlreadyApproved, CodeInvalidState:
		code = codes.FailedPrecondition
	case CodeTimeout:
		code = codes.DeadlineExceeded
	case CodeDenied, CodePathTraversal:
		code = codes.PermissionDenied
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func InternalError(message string, cause error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Cause: cause}
}

// InvalidArgumentError is for request-shape failures at the gRPC
// boundary, before an AppError exists.
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func InvalidArgumentErrorf(format string, args ...any) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
