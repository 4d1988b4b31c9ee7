package freq

import (
	"cosmossdk.io/errors"
)

const Codespace = "freq"

// Frequency table errors
var (
	ErrUnknownColumn    = errors.Register(Codespace, 2, "unknown column")
	ErrEmptyInput       = errors.Register(Codespace, 3, "empty input")
	ErrInvalidParameter = errors.Register(Codespace, 4, "invalid parameter")
)
