package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Helpdesk-specific error types
const (
	// ErrorTypeScopeDenied marks authorization failures of the permission
	// scoping engine: the actor's system/region scope does not cover the
	// requested ticket or action.
	ErrorTypeScopeDenied ErrorType = "scope_denied"

	// ErrorTypeInvalidTransition marks a requested status change that is
	// not in the allowed-next set for the ticket's current status.
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"

	// ErrorTypeReopenWindowExpired marks a reopen attempt past the reopen
	// window. Kept distinct from invalid_transition so the UI can explain
	// the deadline.
	ErrorTypeReopenWindowExpired ErrorType = "reopen_window_expired"

	// ErrorTypeUnresolvedDependency marks a delete blocked by rows that
	// still reference the target entity.
	ErrorTypeUnresolvedDependency ErrorType = "unresolved_dependency"
)

// NewScopeDeniedError creates an authorization error without revealing
// which rows exist.
func NewScopeDeniedError(details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeScopeDenied,
		Message: "you do not have permission to access this resource",
		Code:    http.StatusForbidden,
		Details: firstDetail(details),
	}
}

// NewInvalidTransitionError creates an error for a disallowed status change.
func NewInvalidTransitionError(current, requested string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: fmt.Sprintf("cannot transition ticket from %s to %s", current, requested),
		Code:    http.StatusBadRequest,
	}
}

// NewReopenWindowExpiredError creates an error for a reopen attempt past
// the allowed window.
func NewReopenWindowExpiredError(windowDays int) *AppError {
	return &AppError{
		Type:    ErrorTypeReopenWindowExpired,
		Message: fmt.Sprintf("ticket can only be reopened within %d days of resolution", windowDays),
		Code:    http.StatusBadRequest,
	}
}

// NewUnresolvedDependencyError creates an error for a delete blocked by
// referencing rows, reporting how many rows block the operation.
func NewUnresolvedDependencyError(entity string, blockingCount int64) *AppError {
	return &AppError{
		Type:    ErrorTypeUnresolvedDependency,
		Message: fmt.Sprintf("%s has %d related tickets and cannot be deleted", entity, blockingCount),
		Code:    http.StatusConflict,
		Details: fmt.Sprintf("blocking_rows=%d", blockingCount),
	}
}

// IsScopeDenied checks for a scoping authorization failure.
func IsScopeDenied(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && (appErr.Type == ErrorTypeScopeDenied || appErr.Type == ErrorTypeForbidden)
}

// IsInvalidTransition checks for a state machine rejection.
func IsInvalidTransition(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidTransition
}

// IsReopenWindowExpired checks for an expired reopen window.
func IsReopenWindowExpired(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeReopenWindowExpired
}

// IsUnresolvedDependency checks for a blocked delete.
func IsUnresolvedDependency(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeUnresolvedDependency
}

// AuthError represents authentication-specific errors.
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Invalid credentials are expected and don't need error-level logging.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message does not reveal whether the username or password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "invalid username or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: false,
	}
}

// NewAccountInactiveError creates an error for blocked accounts.
func NewAccountInactiveError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeForbidden,
			Message: "account is blocked",
			Code:    http.StatusForbidden,
		},
		ShouldLog: true,
	}
}

// ShouldLogAuthError returns true if the authentication error should be logged.
func ShouldLogAuthError(err error) bool {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr.ShouldLog
	}
	return true
}
