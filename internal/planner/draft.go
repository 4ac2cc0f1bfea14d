package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
)

// CurrentItinerary is the draft trip context carried between searches.
// Dates are "2006-01-02" strings; ItineraryID is set once a server itinerary
// has been chosen or created.
type CurrentItinerary struct {
	ItineraryID   *int64 `json:"itinerary_id,omitempty"`
	Title         string `json:"title,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
}

// HasFlightDates reports whether both trip dates are known.
func (c CurrentItinerary) HasFlightDates() bool {
	return c.DepartureDate != "" && c.ReturnDate != ""
}

// LastSaved is the save response merged with the itinerary id.
type LastSaved map[string]any

// DraftStore persists the draft context and the last-saved record.
type DraftStore struct {
	mu    sync.Mutex
	store localstore.Store
	log   *slog.Logger
}

// NewDraftStore returns a DraftStore persisting to store.
func NewDraftStore(store localstore.Store, log *slog.Logger) *DraftStore {
	if log == nil {
		log = slog.Default()
	}
	return &DraftStore{store: store, log: log}
}

// Get returns the draft context. ok is false when none is stored or the
// stored record is corrupt.
func (d *DraftStore) Get(ctx context.Context) (CurrentItinerary, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var c CurrentItinerary
	if !d.read(ctx, localstore.KeyCurrentItinerary, &c) {
		return CurrentItinerary{}, false
	}
	return c, true
}

// Set replaces the draft context.
func (d *DraftStore) Set(ctx context.Context, c CurrentItinerary) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.write(ctx, localstore.KeyCurrentItinerary, c); err != nil {
		return fmt.Errorf("planner.DraftStore.Set: %w", err)
	}
	return nil
}

// Clear removes the draft context.
func (d *DraftStore) Clear(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.Delete(ctx, localstore.KeyCurrentItinerary); err != nil {
		return fmt.Errorf("planner.DraftStore.Clear: %w", err)
	}
	return nil
}

// LastSaved returns the record of the most recent successful save.
func (d *DraftStore) LastSaved(ctx context.Context) (LastSaved, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var ls LastSaved
	if !d.read(ctx, localstore.KeyLastSavedItinerary, &ls) || ls == nil {
		return nil, false
	}
	return ls, true
}

// SetLastSaved replaces the last-saved record.
func (d *DraftStore) SetLastSaved(ctx context.Context, ls LastSaved) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.write(ctx, localstore.KeyLastSavedItinerary, ls); err != nil {
		return fmt.Errorf("planner.DraftStore.SetLastSaved: %w", err)
	}
	return nil
}

func (d *DraftStore) read(ctx context.Context, key string, out any) bool {
	raw, ok, err := d.store.Get(ctx, key)
	if err != nil {
		d.log.WarnContext(ctx, "local record unreadable", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		d.log.WarnContext(ctx, "local record corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (d *DraftStore) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return d.store.Set(ctx, key, raw)
}
