package dataset

import (
	"context"
	"sync/atomic"
)

// Holder publishes the current Store snapshot to concurrent readers.
// A reload builds the new Store off to the side and swaps the pointer; a snapshot is never mutated in place.
type Holder struct {
	cur atomic.Pointer[Store]
}

// NewHolder returns a Holder serving s.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.cur.Store(s)
	return h
}

// Current returns the snapshot in use. Callers should read it once per request.
func (h *Holder) Current() *Store { return h.cur.Load() }

// Swap installs s and returns the previous snapshot.
func (h *Holder) Swap(s *Store) *Store { return h.cur.Swap(s) }

// Reload loads a fresh snapshot from src and installs it. On error the current snapshot stays in place.
func (h *Holder) Reload(ctx context.Context, src Source) (Stats, error) {
	s, err := Load(ctx, src)
	if err != nil {
		return Stats{}, err
	}
	h.Swap(s)
	return s.Stats(), nil
}
