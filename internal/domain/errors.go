package domain

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidLeafType  = errors.New("invalid leaf type; must be \"Normal\" or \"Super\"")
	ErrSupplierNotFound = errors.New("supplier not found")
)
