package journal

import "errors"

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTradeNotFound      = errors.New("trade not found")
	ErrSubmissionDisabled = errors.New("required fields missing")
)
