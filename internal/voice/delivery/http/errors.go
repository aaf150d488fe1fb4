package http

import "errors"

var (
	errTextRequired   = errors.New("text is required")
	errIntentRequired = errors.New("intent is required")
	errUnknownIntent  = errors.New("unknown intent")
	errUnknownDomain  = errors.New("unknown domain")
	errTokenRequired  = errors.New("undo_token is required")
)
