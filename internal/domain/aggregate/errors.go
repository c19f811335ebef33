package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrUnknownField = errors.New("unknown field")
)
