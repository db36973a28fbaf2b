package appErrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// AppError is the application error type. The HTTP boundary maps it to a
// status code and a JSON body; everything below the boundary returns it
// as a plain error.
type AppError struct {
	Code     ErrorCode
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so sentinel values compare equal to
// wrapped copies carrying the same code.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if stderrors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithError returns a copy of the error carrying an underlying cause.
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// WithMessage returns a copy of the error with a different message but
// the same code and status.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// Is re-exports errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As re-exports errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors. This is the closed set the HTTP boundary matches on.
var (
	// Authentication
	ErrMissingToken       = New(CodeMissingToken, "Authorization header missing", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid token", http.StatusUnauthorized)
	ErrInvalidTokenType   = New(CodeInvalidTokenType, "Wrong token type for this operation", http.StatusUnauthorized)
	ErrTokenExpired       = New(CodeTokenExpired, "Token has expired", http.StatusUnauthorized)
	ErrUserNotFound       = New(CodeUserNotFound, "User no longer exists", http.StatusUnauthorized)
	ErrAuthRequired       = New(CodeAuthRequired, "Authentication required", http.StatusUnauthorized)
	ErrInvalidCredentials = New(CodeLoginError, "Invalid email or password", http.StatusUnauthorized)
	ErrTokenRefresh       = New(CodeTokenRefreshError, "Could not refresh token", http.StatusUnauthorized)

	// Authorization
	ErrVerificationRequired = New(CodeVerificationRequired, "Email verification required", http.StatusForbidden)
	ErrPremiumRequired      = New(CodePremiumRequired, "Premium subscription required", http.StatusForbidden)

	// Account lifecycle
	ErrEmailTaken             = New(CodeRegistrationError, "Email already registered", http.StatusBadRequest)
	ErrInvalidResetToken      = New(CodePasswordResetError, "Invalid or expired reset token", http.StatusBadRequest)
	ErrInvalidVerifyToken     = New(CodeEmailVerificationError, "Invalid or expired verification token", http.StatusBadRequest)
	ErrAlreadyVerified        = New(CodeAlreadyVerified, "Email already verified", http.StatusBadRequest)
	ErrInvalidCurrentPassword = New(CodePasswordChangeError, "Current password is incorrect", http.StatusBadRequest)

	// Validation / generic
	ErrValidationFailed = New(CodeValidationError, "Validation failed", http.StatusBadRequest)
	ErrForbidden        = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrNotFound         = New(CodeNotFound, "Resource not found", http.StatusNotFound)
)

// ValidationError builds a 400 with a concrete message.
func ValidationError(message string) *AppError {
	return New(CodeValidationError, message, http.StatusBadRequest)
}

// NotFoundError builds a 404 for a named resource.
func NotFoundError(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// InternalError wraps an unexpected failure. The cause is logged but never
// serialized into the response.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// AuthInternalError wraps an unexpected failure inside the auth pipeline.
func AuthInternalError(err error) *AppError {
	return Wrap(err, CodeAuthError, "Authentication failed", http.StatusInternalServerError)
}
