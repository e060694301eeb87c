package domain

import (
	"errors"

	money "github.com/rpgo/slabtax/pkg/decimal"
)

var (
	// ErrInvalidInput marks malformed numeric input such as a negative income.
	ErrInvalidInput = money.ErrInvalidInput

	// ErrNotFound marks a lookup that exhausted its table: an unknown schedule
	// id, or a bracket partition that does not cover the income.
	ErrNotFound = errors.New("not found")
)
