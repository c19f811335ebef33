package synth

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid generator configuration")
	ErrTooManyRows   = errors.New("requested rows exceed distinct (date, dj, venue) combinations")
)
