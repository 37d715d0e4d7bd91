package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portsapi "github.com/tresahq/cashbook_cli/internal/core/ports/api"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

const entriesResource = "entries"

// entryService implements the EntrySvcFacade interface.
type entryService struct {
	BaseService
	api   portsapi.EntryAPI
	cache *cache.Cache

	// onSettled runs after a create resolves either way. The originating
	// view may be gone by then; the hook must tolerate that, so a nil hook
	// is simply skipped.
	onSettled func()
}

// EntryServiceOption customizes an entry service.
type EntryServiceOption func(*entryService)

// WithSettledHook registers a callback invoked after each create mutation
// settles (committed or rolled back).
func WithSettledHook(hook func()) EntryServiceOption {
	return func(s *entryService) { s.onSettled = hook }
}

// NewEntryService creates a new entry service with the provided dependencies.
func NewEntryService(api portsapi.EntryAPI, c *cache.Cache, opts ...EntryServiceOption) portssvc.EntrySvcFacade {
	s := &entryService{api: api, cache: c}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure entryService implements the EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// ListEntries retrieves a cashbook's entries in server order. A missing
// cashbook id (including the literal strings "undefined"/"null") disables
// the query: no network call, empty list, no error.
func (s *entryService) ListEntries(ctx context.Context, cashbookID string) ([]domain.Entry, error) {
	if missingParentID(cashbookID) {
		s.LogDebug(ctx, "Entry list disabled: no usable cashbook id")
		return []domain.Entry{}, nil
	}
	key := cache.ListKey(entriesResource, cashbookID)
	if cached, ok := cache.GetList[domain.Entry](s.cache, key); ok {
		return cached, nil
	}

	entries, err := s.api.ListEntries(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries",
			slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	cache.SetList(s.cache, key, entries)
	return entries, nil
}

// CreateEntry records a new entry optimistically: a placeholder row is
// inserted at the head of the cached list before the server confirms. On
// failure the cache is restored to the exact pre-mutation snapshot and the
// error surfaces to the caller; on success the cache is invalidated so the
// next read carries the authoritative row with its real id and
// server-computed fields.
func (s *entryService) CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	if missingParentID(cashbookID) {
		return nil, fmt.Errorf("cannot create entry: %w", apperrors.ErrMissingParent)
	}

	mutation := newCreateMutation(s.cache, cashbookID)
	placeholder := mutation.begin(req)
	s.LogDebug(ctx, "Optimistic entry inserted",
		slog.String("cashbook_id", cashbookID),
		slog.String("placeholder_id", placeholder.ID))
	defer s.settled()

	entry, err := s.api.CreateEntry(ctx, cashbookID, req)
	if err != nil {
		mutation.rollback()
		s.LogError(ctx, err, "Entry creation failed, cache rolled back",
			slog.String("cashbook_id", cashbookID))
		return nil, err
	}

	mutation.commit(cashbookID)
	s.LogDebug(ctx, "Entry created successfully",
		slog.String("cashbook_id", cashbookID),
		slog.String("entry_id", entry.ID))
	return entry, nil
}

// DeleteEntry deletes an entry, forwarding the mandatory reason, and
// invalidates the cashbook's cached entries and totals.
func (s *entryService) DeleteEntry(ctx context.Context, entryID, cashbookID, reason string) error {
	if err := s.api.DeleteEntry(ctx, entryID, cashbookID, dto.DeleteEntryRequest{Reason: reason}); err != nil {
		s.LogError(ctx, err, "Failed to delete entry",
			slog.String("entry_id", entryID),
			slog.String("cashbook_id", cashbookID))
		return err
	}
	s.cache.Invalidate(
		cache.ListKey(entriesResource, cashbookID),
		cache.EntityKey(cashbookResource, cashbookID),
	)
	return nil
}

// settled invokes the settled hook if one is registered. The hook belongs to
// a view that may already be torn down; skipping a nil hook keeps that a
// no-op rather than a panic.
func (s *entryService) settled() {
	if s.onSettled != nil {
		s.onSettled()
	}
}
