package apperror

import "errors"

var (
	ErrInvalidMessage = errors.New("invalid message")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownPreset  = errors.New("unknown game preset")
)
