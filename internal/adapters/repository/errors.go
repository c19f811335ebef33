package repository

import "errors"

// Sentinel kinds for table loading errors.
var (
	ErrLoad           = errors.New("event table unavailable")
	ErrMissingColumns = errors.New("event table is missing required columns")
	ErrMalformedRow   = errors.New("malformed row")
)
