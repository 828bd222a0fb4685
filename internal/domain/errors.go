package domain

import "errors"

var (
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
)
