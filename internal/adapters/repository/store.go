package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/pkg/logger"
	"github.com/okian/djtour/pkg/metrics"
)

// Store hands out the session's immutable event table.
type Store interface {
	// Table returns the loaded table. Every call returns the same handle.
	Table(ctx context.Context) (*model.Table, error)
}

// Opener opens the backing table file.
type Opener func() (io.ReadCloser, error)

// CSVStore loads a CSV file on first use and caches the result for the
// rest of the process. The file is static for the session, so the cache is
// never invalidated; a failed load is cached as well.
type CSVStore struct {
	path   string
	open   Opener
	logger logger.Logger

	once  sync.Once
	table *model.Table
	err   error
}

// NewCSVStore creates a store backed by the CSV file at path.
func NewCSVStore(path string, opts ...Option) *CSVStore {
	s := &CSVStore{
		path:   path,
		open:   func() (io.ReadCloser, error) { return os.Open(path) },
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table loads the file once and returns the cached table afterwards.
func (s *CSVStore) Table(ctx context.Context) (*model.Table, error) {
	s.once.Do(func() {
		s.table, s.err = s.load(ctx)
	})
	return s.table, s.err
}

func (s *CSVStore) load(ctx context.Context) (*model.Table, error) {
	start := time.Now()
	f, err := s.open()
	if err != nil {
		metrics.RecordLoadFailure()
		return nil, fmt.Errorf("repository.open %s: %w: %w", s.path, ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	table, err := Load(ctx, f, s.logger.Named("repository"))
	if err != nil {
		metrics.RecordLoadFailure()
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	st := table.Stats()
	metrics.RecordTableLoad(table.Len(), st.RowsRejected, st.DuplicateRows, st.GenreConflicts,
		float64(time.Since(start).Microseconds())/1000)
	return table, nil
}

// staticStore serves a table that is already in memory.
type staticStore struct {
	table *model.Table
}

// NewStatic wraps an existing table as a Store.
func NewStatic(table *model.Table) Store {
	return staticStore{table: table}
}

func (s staticStore) Table(context.Context) (*model.Table, error) {
	return s.table, nil
}
