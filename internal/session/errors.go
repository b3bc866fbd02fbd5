package session

import "errors"

var (
	ErrAuthExpired         = errors.New("credential expired")
	ErrAuthRejected        = errors.New("credential rejected")
	ErrUnreachable         = errors.New("backend unreachable")
	ErrInvalidTransition   = errors.New("invalid session transition")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrRegistration        = errors.New("registration rejected")
)
