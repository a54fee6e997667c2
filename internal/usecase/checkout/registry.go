package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
)

// DraftTTL is how long an abandoned draft is kept before Open evicts it.
const DraftTTL = 12 * time.Hour

// Registry holds the open drafts. Each draft has its own lock, so a slow
// submit blocks only that draft.
type Registry struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*entry
	now    func() time.Time
}

type entry struct {
	mu     sync.Mutex
	draft  *Draft // nil once closed
	opened time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		drafts: make(map[uuid.UUID]*entry),
		now:    time.Now,
	}
}

// Open stores d under a fresh id and returns it. Drafts older than DraftTTL
// are dropped first.
func (r *Registry) Open(d *Draft) uuid.UUID {
	d.ID = uuid.New()

	r.mu.Lock()
	now := r.now()
	evicted := r.evictLocked(now)
	r.drafts[d.ID] = &entry{draft: d, opened: now}
	open := len(r.drafts)
	r.mu.Unlock()

	if evicted > 0 {
		log.Info().Int("evicted", evicted).Int("open", open).Msg("stale checkout drafts evicted")
	}
	return d.ID
}

// evictLocked drops entries opened before now-DraftTTL; the caller holds r.mu.
// An evicted draft still being edited finishes its call but can no longer be
// found.
func (r *Registry) evictLocked(now time.Time) int {
	cutoff := now.Add(-DraftTTL)
	n := 0
	for id, e := range r.drafts {
		if e.opened.Before(cutoff) {
			delete(r.drafts, id)
			n++
		}
	}
	return n
}

func (r *Registry) lookup(id uuid.UUID) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.drafts[id]
	if !ok {
		return nil, httperr.ErrBusiness("draft_not_found")
	}
	return e, nil
}

// With runs fn on the draft while holding its lock.
func (r *Registry) With(id uuid.UUID, fn func(d *Draft) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		return httperr.ErrBusiness("draft_not_found")
	}
	return fn(e.draft)
}

func (r *Registry) Close(id uuid.UUID) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	r.closeLocked(id, e)
	return nil
}

// Submit finalizes the draft and closes it on success. On failure the draft
// stays open for a retry.
func (r *Registry) Submit(ctx context.Context, id uuid.UUID, uc *Finalize) (*Result, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		return nil, httperr.ErrBusiness("draft_not_found")
	}

	res, err := uc.Execute(ctx, e.draft)
	if err != nil {
		return nil, err
	}

	r.closeLocked(id, e)
	return res, nil
}

// closeLocked drops the entry; the caller holds e.mu.
func (r *Registry) closeLocked(id uuid.UUID, e *entry) {
	e.draft = nil

	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
}
