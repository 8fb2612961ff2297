package balance

import "errors"

type Action string

const (
	ActionAdd      Action = "add"
	ActionSubtract Action = "subtract"
)

var ErrInvalidAmount = errors.New("amount must be positive")
