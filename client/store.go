package client

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
)

// Store is the per-entity UI state holder: the item list mirrored from the
// last successful fetch, the current form draft, edit mode, a loading flag
// and the last error.
//
// Mutating operations (Submit, Remove) serialize through one mutex, so a
// mutate-then-refresh sequence can never interleave with another mutation.
// Concurrent Refresh calls coalesce into a single list fetch.
type Store[T any, D any] struct {
	api      *EntityAPI[T, D]
	defaults func() D
	itemID   func(*T) uint
	toDraft  func(*T) D
	fallback func() []T // nil when the entity has no fallback dataset

	opMu     sync.Mutex // serializes mutate-then-refresh sequences
	inflight atomic.Int32
	group    singleflight.Group

	stateMu        sync.Mutex
	items          []T
	draft          D
	editingID      uint
	lastError      string
	notImplemented bool
}

func newStore[T any, D any](api *EntityAPI[T, D], defaults func() D, itemID func(*T) uint, toDraft func(*T) D, fallback func() []T) *Store[T, D] {
	s := &Store[T, D]{
		api:      api,
		defaults: defaults,
		itemID:   itemID,
		toDraft:  toDraft,
		fallback: fallback,
	}
	s.draft = defaults()
	return s
}

// Refresh fetches the full list and replaces Items on success. On failure
// it records LastError; a storage outage additionally substitutes the
// static fallback dataset when the entity has one, while a NotImplemented
// answer only raises the NotImplemented flag so the UI can say "coming
// soon" instead of showing fabricated data.
func (s *Store[T, D]) Refresh(ctx context.Context) error {
	items, err := s.fetchList(ctx)

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		switch {
		case code.Is(err, code.ErrNotImplemented):
			s.notImplemented = true
		case code.Is(err, code.ErrStorageUnavailable) && s.fallback != nil:
			s.items = s.fallback()
		}
		return err
	}
	s.items = items
	s.lastError = ""
	s.notImplemented = false
	return nil
}

// fetchList coalesces overlapping refreshes into one network call.
func (s *Store[T, D]) fetchList(ctx context.Context) ([]T, error) {
	v, err, _ := s.group.Do("list", func() (interface{}, error) {
		s.inflight.Add(1)
		defer s.inflight.Add(-1)
		return s.api.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// Submit sends the draft: an update when edit mode is active, a create
// otherwise. Success resets the draft to entity defaults, leaves edit mode
// and refreshes the list. Failure keeps draft and edit mode untouched so
// the user can correct and retry.
func (s *Store[T, D]) Submit(ctx context.Context, draft D) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.stateMu.Lock()
	s.draft = draft
	editingID := s.editingID
	s.stateMu.Unlock()

	err := s.send(ctx, editingID, &draft)

	s.stateMu.Lock()
	if err != nil {
		s.lastError = err.Error()
		s.stateMu.Unlock()
		return err
	}
	s.editingID = 0
	s.draft = s.defaults()
	s.lastError = ""
	s.stateMu.Unlock()

	return s.Refresh(ctx)
}

func (s *Store[T, D]) send(ctx context.Context, editingID uint, draft *D) error {
	s.inflight.Add(1)
	defer s.inflight.Add(-1)
	if editingID != 0 {
		_, err := s.api.Update(ctx, editingID, draft)
		return err
	}
	_, err := s.api.Create(ctx, draft)
	return err
}

// BeginEdit copies the item's editable fields into the draft and enters
// edit mode. It does not fetch; Items is assumed current.
func (s *Store[T, D]) BeginEdit(item T) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.draft = s.toDraft(&item)
	s.editingID = s.itemID(&item)
}

// CancelEdit resets the draft to entity defaults and leaves edit mode.
func (s *Store[T, D]) CancelEdit() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.draft = s.defaults()
	s.editingID = 0
}

// Remove deletes the item with the given id and refreshes on success. Any
// confirmation step happens in the presentation layer before calling this.
func (s *Store[T, D]) Remove(ctx context.Context, id uint) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := func() error {
		s.inflight.Add(1)
		defer s.inflight.Add(-1)
		return s.api.Delete(ctx, id)
	}()
	if err != nil {
		s.stateMu.Lock()
		s.lastError = err.Error()
		s.stateMu.Unlock()
		return err
	}
	return s.Refresh(ctx)
}

// Items returns a copy of the current list.
func (s *Store[T, D]) Items() []T {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Draft returns the current form draft.
func (s *Store[T, D]) Draft() D {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.draft
}

// EditingID returns the id being edited, or 0 when not in edit mode.
func (s *Store[T, D]) EditingID() uint {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.editingID
}

// Loading reports whether a network call for this store is outstanding.
func (s *Store[T, D]) Loading() bool {
	return s.inflight.Load() > 0
}

// LastError returns the description of the most recent failed operation,
// or "" after a success.
func (s *Store[T, D]) LastError() string {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.lastError
}

// NotImplemented reports whether the server answered that this entity has
// no backend implementation.
func (s *Store[T, D]) NotImplemented() bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.notImplemented
}
