package chat

import "errors"

var (
	ErrDisabled        = errors.New("assistant is not configured")
	ErrMessageRequired = errors.New("message text is required")
	ErrSessionRequired = errors.New("session id is required")
	ErrAssistant       = errors.New("assistant failed to answer")
)
