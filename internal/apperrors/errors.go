package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientBalance indicates that a debit would push a coin balance
// below zero. The operation is aborted with no mutation and no history entry.
var ErrInsufficientBalance = errors.New("insufficient coin balance")

// ErrRateNotMet indicates that an exchange was attempted before the balance
// reached the configured exchange rate.
var ErrRateNotMet = errors.New("exchange rate not met")
