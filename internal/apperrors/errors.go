package apperrors

import "errors"

// ErrNotFound indicates that a referenced account could not be found.
var ErrNotFound = errors.New("account not found")

// ErrInsufficientFunds indicates a debit larger than the account's current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
