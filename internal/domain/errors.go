package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced user record does not exist,
	// including the case where the authenticated user's own record has
	// disappeared between authentication and handling.
	ErrNotFound = errors.New("user not found")

	// ErrMissingParameter is returned when a required request parameter is absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrDuplicateRequest is returned when the sender already has a pending
	// request on the target's record.
	ErrDuplicateRequest = errors.New("friend request already sent")

	// ErrNoSuchRequest is returned when accepting or rejecting a request that
	// is not pending on the caller's record.
	ErrNoSuchRequest = errors.New("no friend request from this user")
)
