package service

import "errors"

// Sentinel kinds for progression command failures. Every command returns nil
// or exactly one of these, possibly wrapped with context. Only ErrPersistence
// is worth retrying; the rest are permanent for the given inputs.
var (
	ErrValidation        = errors.New("invalid input")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("name already taken")
	ErrLocked            = errors.New("mythic quest is locked")
	ErrInvalidTransition = errors.New("request is not pending")
	ErrPersistence       = errors.New("persistence failure")
)

var domainErrors = []error{
	ErrValidation,
	ErrPermissionDenied,
	ErrNotFound,
	ErrConflict,
	ErrLocked,
	ErrInvalidTransition,
	ErrPersistence,
}

// IsDomainError reports whether err wraps one of the sentinel kinds above.
func IsDomainError(err error) bool {
	for _, kind := range domainErrors {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
