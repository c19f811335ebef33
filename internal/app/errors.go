package service

import "errors"

var (
	ErrNotStarted     = errors.New("service not started")
	ErrEntityRequired = errors.New("entity is required")
)
