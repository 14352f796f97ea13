package sdk

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidSender     = errors.New("invalid sender")
	ErrInvalidRecipient  = errors.New("invalid recipient")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnknownContract   = errors.New("unknown contract")
	ErrAlreadyDeployed   = errors.New("contract already deployed")
	// ErrAborted wraps a panic raised inside a contract body.
	ErrAborted = errors.New("execution aborted")
)
