package validator

import "errors"

var (
	ErrEmailAddressSyntax = errors.New("invalid syntax")
	ErrInvalidHost        = errors.New("invalid host")
)

type ValidationError struct {
	Validator string
	Internal  error
	error
}
