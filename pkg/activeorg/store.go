package activeorg

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// StorageKey is the key the active organization id is persisted under.
const StorageKey = "activeOrgId"

// Store is the source of truth for the active organization of a session.
type Store struct {
	storage Storage
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage read failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a Store backed by storage.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the active organization id. The boolean is false when no
// organization is selected, when the stored value is blank, or when the
// storage cannot be read.
func (s *Store) Get(ctx context.Context) (string, bool) {
	value, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read active organization", slog.Any("error", err))
		return "", false
	}
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Set trims value and stores it as the active organization, replacing any
// previous one. Blank input fails with ErrInvalidTenant and leaves the stored
// value untouched.
func (s *Store) Set(ctx context.Context, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrInvalidTenant
	}
	if err := s.storage.Set(ctx, StorageKey, value); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

// Clear removes the active organization. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Remove(ctx, StorageKey); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}
