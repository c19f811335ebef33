// Package repository reads and writes the flat event table.
package repository

import "github.com/okian/djtour/pkg/logger"

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithLogger sets the logger used to report rejected rows.
func WithLogger(l logger.Logger) Option {
	return func(s *CSVStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOpener replaces how the table file is opened. Tests use it to serve
// content from memory.
func WithOpener(open Opener) Option {
	return func(s *CSVStore) {
		if open != nil {
			s.open = open
		}
	}
}
