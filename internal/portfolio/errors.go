package portfolio

import "errors"

var (
	ErrInsufficientFunds    = errors.New("Insufficient funds")
	ErrInsufficientHoldings = errors.New("Insufficient holdings")
	ErrPriceUnavailable     = errors.New("Price unavailable")
	ErrInvalidQuantity      = errors.New("Quantity must be a positive number")
	ErrInvalidPrice         = errors.New("Price must be a positive number")
	ErrInvalidAmount        = errors.New("Amount must be a positive number")
	ErrInvalidTerm          = errors.New("Term must be a positive number of months")
	ErrInvalidEntryKind     = errors.New("Entry kind must be income, expense or investment")
)
