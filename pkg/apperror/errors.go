package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Signing (SIGN) ----

func ErrSigningNotAllowed() *AppError {
	return New("SIGN_001", "Wallet is not allowed to sign", http.StatusForbidden)
}

func ErrEmptyShardList() *AppError {
	return New("SIGN_002", "Compound wallet has no shards", http.StatusUnprocessableEntity)
}

func ErrNoSigningAccounts() *AppError {
	return New("SIGN_003", "No signing accounts found", http.StatusUnprocessableEntity)
}

// ErrUnknownSigner covers both an unknown multisig signatory and a shard
// outside the compound wallet.
func ErrUnknownSigner(message string) *AppError {
	return New("SIGN_004", message, http.StatusBadRequest)
}

func ErrNoCalls() *AppError {
	return New("SIGN_005", "No call configured", http.StatusUnprocessableEntity)
}

func ErrSignatoryCycle() *AppError {
	return New("SIGN_006", "Multisig is its own signatory", http.StatusUnprocessableEntity)
}

// ---- Sessions & Directory (SESS, WAL) ----

func ErrSessionNotFound() *AppError {
	return New("SESS_001", "Signing session not found", http.StatusNotFound)
}

func ErrNotFound(entity string) *AppError {
	return New("WAL_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Chain (CHAIN) ----

func ErrChainUnavailable(err error) *AppError {
	return Wrap("CHAIN_001", "Chain query failed", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrMissingToken() *AppError {
	return New("AUTH_001", "Missing bearer token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_002", "Invalid username or password", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrOperatorDisabled() *AppError {
	return New("AUTH_004", "Operator account is disabled", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
