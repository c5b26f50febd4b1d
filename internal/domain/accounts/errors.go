package accounts

import "errors"

var (
	// ErrAuthFailed covers every authentication failure uniformly: unknown
	// username, wrong password and unapproved account are indistinguishable
	// to the caller.
	ErrAuthFailed = errors.New("authentication failed")

	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidIndex  = errors.New("index out of range")

	// Codec sentinels. Short and admin records are skipped silently on load,
	// partial ones with a diagnostic.
	ErrShortRecord   = errors.New("record has fewer than five fields")
	ErrAdminRecord   = errors.New("admin records are not reloaded")
	ErrPartialRecord = errors.New("employee record is missing fields")
)
