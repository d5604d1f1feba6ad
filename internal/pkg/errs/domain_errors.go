package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	ErrInterventionNotFound = errors.New("intervention not found")
	ErrUnknownLookupKind    = errors.New("unknown lookup kind")

	// Backend gateway errors
	ErrBackendAuth = errors.New("backend rejected credentials")
)
