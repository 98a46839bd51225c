package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrBadCredentials covers both an unknown username and a wrong password.
	// The two cases are intentionally indistinguishable to the caller.
	ErrBadCredentials = errors.New("username or password is wrong")

	// ErrUnauthorized is returned when a request carries no session token or
	// a token that matches no account.
	ErrUnauthorized = errors.New("unauthorized")
)
