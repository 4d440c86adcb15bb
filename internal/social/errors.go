package social

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyRequested = errors.New("friend request already sent")
	ErrAlreadyFriends   = errors.New("already friends")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrDuplicateLike    = errors.New("already liked")
	ErrValidation       = errors.New("missing or invalid field")

	// ErrStore wraps any persistence failure not covered above.
	ErrStore = errors.New("storage failure")
)
