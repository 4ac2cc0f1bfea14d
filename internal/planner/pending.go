// Package planner holds the client-side trip planning logic: the pending item
// stage, the draft itinerary context, the reconciler that flushes staged items
// into a server itinerary, and the search flows that feed the stage.
//
// All durable state goes through an injected localstore.Store.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

// ItemType discriminates staged items.
type ItemType string

const (
	ItemFlight     ItemType = "flight"
	ItemHotel      ItemType = "hotel"
	ItemAttraction ItemType = "attraction"
)

// PendingItem is a search result staged for a trip. Data is the result
// record as the search returned it.
type PendingItem struct {
	Type    ItemType      `json:"type"`
	Data    record.Record `json:"data"`
	AddedAt time.Time     `json:"addedAt"`
}

// PendingStore is the ordered, durable stage of pending items. Items are
// addressed by position only; there is no deduplication.
type PendingStore struct {
	mu    sync.Mutex
	store localstore.Store
	log   *slog.Logger
	now   func() time.Time
}

// NewPendingStore returns a PendingStore persisting to store.
func NewPendingStore(store localstore.Store, log *slog.Logger) *PendingStore {
	if log == nil {
		log = slog.Default()
	}
	return &PendingStore{store: store, log: log, now: time.Now}
}

// List returns the staged items in insertion order. Missing or corrupt
// storage reads as an empty stage.
func (p *PendingStore) List(ctx context.Context) []PendingItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load(ctx)
}

// Len returns the number of staged items.
func (p *PendingStore) Len(ctx context.Context) int {
	return len(p.List(ctx))
}

// Add appends item and persists the stage before returning. A zero AddedAt is
// set to the current time.
func (p *PendingStore) Add(ctx context.Context, item PendingItem) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if item.AddedAt.IsZero() {
		item.AddedAt = p.now().UTC()
	}
	items := append(p.load(ctx), item)
	if err := p.save(ctx, items); err != nil {
		return fmt.Errorf("planner.PendingStore.Add: %w", err)
	}
	return nil
}

// RemoveAt removes the item at index. An index outside [0, len) is a no-op
// and leaves storage untouched.
func (p *PendingStore) RemoveAt(ctx context.Context, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := p.load(ctx)
	if index < 0 || index >= len(items) {
		return nil
	}
	out := make([]PendingItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	if err := p.save(ctx, out); err != nil {
		return fmt.Errorf("planner.PendingStore.RemoveAt: %w", err)
	}
	return nil
}

// Clear empties the stage.
func (p *PendingStore) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Delete(ctx, localstore.KeyPendingItems); err != nil {
		return fmt.Errorf("planner.PendingStore.Clear: %w", err)
	}
	return nil
}

func (p *PendingStore) load(ctx context.Context) []PendingItem {
	raw, ok, err := p.store.Get(ctx, localstore.KeyPendingItems)
	if err != nil {
		p.log.WarnContext(ctx, "pending items unreadable, treating as empty", "error", err)
		return []PendingItem{}
	}
	if !ok {
		return []PendingItem{}
	}
	var items []PendingItem
	if err := json.Unmarshal(raw, &items); err != nil {
		p.log.WarnContext(ctx, "pending items corrupt, treating as empty", "error", err)
		return []PendingItem{}
	}
	if items == nil {
		items = []PendingItem{}
	}
	return items
}

func (p *PendingStore) save(ctx context.Context, items []PendingItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return p.store.Set(ctx, localstore.KeyPendingItems, raw)
}
