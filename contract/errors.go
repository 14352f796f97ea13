package contract

import "errors"

// Error kinds surfaced by the contracts. Call sites wrap them with context,
// callers match with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrWindowClosed         = errors.New("window closed")
	ErrCapViolation         = errors.New("cap violation")
	ErrPreconditionUnmet    = errors.New("precondition unmet")
	ErrAlreadyFinalized     = errors.New("already finalized")
	ErrInsufficientBalance  = errors.New("insufficient token balance")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrCorruptState         = errors.New("corrupt state")
)
