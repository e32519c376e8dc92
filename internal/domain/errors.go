package domain

import "errors"

// Sentinel errors shared across backends. Handlers map these to HTTP statuses;
// anything else coming out of a repository is treated as an opaque backend failure.
var (
	// ErrNotFound signals an expected record is absent (e.g. the personal info singleton).
	ErrNotFound = errors.New("resource not found")

	// ErrNoBackend signals that neither database backend was configured at startup.
	// It is fatal to the request, never to the process.
	ErrNoBackend = errors.New("no database configured")

	// ErrSeedInProgress signals a reseed already holds the maintenance lock.
	ErrSeedInProgress = errors.New("seed operation already in progress")
)
