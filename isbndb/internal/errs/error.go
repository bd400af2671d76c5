package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyID       = errors.New("empty id")
	ErrInvalidID     = errors.New("invalid id escape")
	ErrLimit         = errors.New("limit is invalid")
	ErrRepeatedParam = errors.New("repeated query parameter")
)
