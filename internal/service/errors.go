package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a service operation receives
	// empty or unusable input, such as a blank username or password.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login and ChangePassword when the
	// supplied password does not match the stored credential hash.
	ErrWrongPassword = errors.New("wrong password")
)
