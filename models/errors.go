package models

import "errors"

// Error taxonomy shared by the stores and the API client. Controllers match
// with errors.Is and translate to HTTP statuses; nothing here is fatal.
var (
	// ErrAuthFailed means the identity provider rejected the credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrAccountBlocked means the backend registry reported the account as
	// blocked; the session store forces a logout before returning it.
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrLoginRequired means a cart mutation was attempted with no active
	// session.
	ErrLoginRequired = errors.New("login required")

	// ErrNotFound means the backend has no such record.
	ErrNotFound = errors.New("not found")
)
