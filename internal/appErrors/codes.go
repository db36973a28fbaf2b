package appErrors

// Error codes grouped by domain. These are the stable machine-readable
// identifiers clients match on; messages may change, codes may not.
const (
	// Authentication
	CodeMissingToken       ErrorCode = "MISSING_TOKEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeInvalidTokenType   ErrorCode = "INVALID_TOKEN_TYPE"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeAuthRequired       ErrorCode = "AUTH_REQUIRED"
	CodeAuthError          ErrorCode = "AUTH_ERROR"
	CodeLoginError         ErrorCode = "LOGIN_ERROR"
	CodeTokenRefreshError  ErrorCode = "TOKEN_REFRESH_ERROR"

	// Authorization
	CodeVerificationRequired ErrorCode = "EMAIL_VERIFICATION_REQUIRED"
	CodePremiumRequired      ErrorCode = "PREMIUM_REQUIRED"

	// Account lifecycle
	CodeRegistrationError      ErrorCode = "REGISTRATION_ERROR"
	CodeLogoutError            ErrorCode = "LOGOUT_ERROR"
	CodePasswordResetError     ErrorCode = "PASSWORD_RESET_ERROR"
	CodeEmailVerificationError ErrorCode = "EMAIL_VERIFICATION_ERROR"
	CodeAlreadyVerified        ErrorCode = "ALREADY_VERIFIED"
	CodePasswordChangeError    ErrorCode = "PASSWORD_CHANGE_ERROR"

	// Validation
	CodeValidationError ErrorCode = "VALIDATION_ERROR"

	// Generic
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeForbidden     ErrorCode = "FORBIDDEN"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
