package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyPaid       = errors.New("job already paid")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrLimitExceeded     = errors.New("deposit exceeds the allowed limit")
	ErrNoData            = errors.New("no paid jobs in the selected period")
	ErrValidation        = errors.New("invalid input")
)
