package compensation

import "errors"

var (
	ErrCompensationNotFound = errors.New("compensation record not found")
	ErrInvalidSignature     = errors.New("payment signature verification failed")
	ErrInvalidMonth         = errors.New("month must be a label string or a number between 0 and 11")
	ErrGatewayUnavailable   = errors.New("payment gateway request failed")
	ErrAdvanceNotFound      = errors.New("advance loan not found")
	ErrAdvanceAlreadyClosed = errors.New("advance loan is already closed")
)
