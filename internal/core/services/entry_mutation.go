package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// MutationState tags the lifecycle of one optimistic create.
type MutationState string

const (
	MutationIdle       MutationState = "IDLE"
	MutationPending    MutationState = "PENDING"
	MutationCommitted  MutationState = "COMMITTED"
	MutationRolledBack MutationState = "ROLLED_BACK"
)

// createMutation is one optimistic entry creation. It is keyed by its own
// lifecycle, not by any durable identifier: concurrent creates each hold an
// independent mutation with an independent snapshot, and rolling one back
// restores exactly the snapshot it captured at start.
type createMutation struct {
	cache       *cache.Cache
	key         cache.Key
	state       MutationState
	snapshot    []domain.Entry
	hadSnapshot bool
	placeholder domain.Entry
}

func newCreateMutation(c *cache.Cache, cashbookID string) *createMutation {
	return &createMutation{
		cache: c,
		key:   cache.ListKey(entriesResource, cashbookID),
		state: MutationIdle,
	}
}

// begin captures the pre-mutation snapshot and inserts a placeholder entry at
// the head of the cached list so the pending write is visible immediately.
// The placeholder carries a locally generated id the server will never echo.
func (m *createMutation) begin(req dto.CreateEntryRequest) domain.Entry {
	m.snapshot, m.hadSnapshot = cache.GetList[domain.Entry](m.cache, m.key)

	m.placeholder = domain.Entry{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		EntryDate:   req.EntryDate,
		CreatedAt:   time.Now(),
		CreatedBy:   domain.EntryAuthor{FirstName: "You"},
	}
	updated := make([]domain.Entry, 0, len(m.snapshot)+1)
	updated = append(updated, m.placeholder)
	updated = append(updated, m.snapshot...)
	cache.SetList(m.cache, m.key, updated)

	m.state = MutationPending
	return m.placeholder
}

// rollback restores the exact pre-mutation snapshot.
func (m *createMutation) rollback() {
	if m.state != MutationPending {
		return
	}
	if m.hadSnapshot {
		cache.SetList(m.cache, m.key, m.snapshot)
	} else {
		m.cache.Invalidate(m.key)
	}
	m.state = MutationRolledBack
}

// commit invalidates the list so the next read refetches the authoritative
// rows, replacing the placeholder with the server's entry.
func (m *createMutation) commit(cashbookID string) {
	if m.state != MutationPending {
		return
	}
	m.cache.Invalidate(m.key, cache.EntityKey(cashbookResource, cashbookID))
	m.state = MutationCommitted
}
