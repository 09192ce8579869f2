package catalog

import "errors"

var (
	ErrOutOfRange     = errors.New("path out of range")
	ErrInvalidValue   = errors.New("invalid value for path")
	ErrImmutableField = errors.New("field is immutable")
	ErrStoreNotFound  = errors.New("store not found")
)
