package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

// Itinerary is the part of a server itinerary the planner cares about.
type Itinerary struct {
	ID            int64  `json:"itinerary_id"`
	Title         string `json:"title"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
}

// FlightDatesRequest asks the service to create an itinerary spanning the
// given dates.
type FlightDatesRequest struct {
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Title         string `json:"title,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
}

// SaveItem is the normalized shape of a staged hotel or attraction.
type SaveItem struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Type  ItemType `json:"type"`
}

// SavePayload is the body of an itinerary save.
type SavePayload struct {
	Flights []record.Record `json:"flights"`
	Items   []SaveItem      `json:"items"`
}

// ItineraryAPI is the itinerary service as seen by the Reconciler.
type ItineraryAPI interface {
	CreateItinerary(ctx context.Context) (Itinerary, error)
	CreateItineraryFromFlightDates(ctx context.Context, req FlightDatesRequest) (Itinerary, error)
	SaveItineraryItems(ctx context.Context, id int64, payload SavePayload) (map[string]any, error)
}

// SaveOutcome describes a successful SaveAll.
type SaveOutcome struct {
	ItineraryID int64
	// Created is true when the itinerary was created by this save.
	Created bool
	// NavigateTo is the detail view of the saved itinerary.
	NavigateTo string
	Response   map[string]any
}

// saveLeaseTTL bounds how long a crashed save keeps other saves out. It
// covers the create and save calls at the client's default timeout.
const saveLeaseTTL = 2 * time.Minute

// Reconciler flushes the pending stage into a server itinerary, creating the
// itinerary first when none was selected.
type Reconciler struct {
	pending *PendingStore
	drafts  *DraftStore
	api     ItineraryAPI
	log     *slog.Logger
	saving  atomic.Bool
}

// NewReconciler wires a Reconciler.
func NewReconciler(pending *PendingStore, drafts *DraftStore, api ItineraryAPI, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{pending: pending, drafts: drafts, api: api, log: log}
}

// SaveAll saves every staged item into the selected itinerary, or into a new
// one created from draft. Calls run strictly in sequence: create, then save.
// Nothing local changes unless the save call succeeds. A call made while
// another is running, in this process or in another one sharing the same
// local store, fails with ErrSaveInProgress.
func (r *Reconciler) SaveAll(ctx context.Context, selected *int64, draft *CurrentItinerary) (SaveOutcome, error) {
	if !r.saving.CompareAndSwap(false, true) {
		return SaveOutcome{}, ErrSaveInProgress
	}
	defer r.saving.Store(false)

	release, err := r.pending.store.Lock(ctx, localstore.LeaseSave, saveLeaseTTL)
	if errors.Is(err, localstore.ErrLocked) {
		return SaveOutcome{}, ErrSaveInProgress
	}
	if err != nil {
		return SaveOutcome{}, &Error{Kind: ErrSaveFailed, Msg: "Could not lock local state", Err: err}
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			r.log.WarnContext(ctx, "releasing save lease", "error", err)
		}
	}()

	items := r.pending.List(ctx)
	if len(items) == 0 {
		return SaveOutcome{}, ErrNoPendingItems
	}

	var (
		id      int64
		created bool
	)
	if selected != nil {
		id = *selected
	} else {
		var err error
		if id, err = r.createTarget(ctx, draft); err != nil {
			return SaveOutcome{}, err
		}
		created = true
	}

	payload := BuildPayload(items)
	r.log.DebugContext(ctx, "saving itinerary items",
		"itinerary_id", id, "flights", len(payload.Flights), "items", len(payload.Items))

	resp, err := r.api.SaveItineraryItems(ctx, id, payload)
	if err != nil {
		return SaveOutcome{}, wrap(ErrSaveFailed, "Failed to save items to itinerary", err)
	}

	last := LastSaved{}
	maps.Copy(last, resp)
	last["itinerary_id"] = id

	// The server save is done; local bookkeeping failures are reported in the
	// log, not as a failed save.
	if err := r.drafts.SetLastSaved(ctx, last); err != nil {
		r.log.WarnContext(ctx, "recording last saved itinerary", "error", err)
	}
	if err := r.pending.Clear(ctx); err != nil {
		r.log.WarnContext(ctx, "clearing pending items", "error", err)
	}
	if err := r.drafts.Clear(ctx); err != nil {
		r.log.WarnContext(ctx, "clearing draft itinerary", "error", err)
	}

	return SaveOutcome{
		ItineraryID: id,
		Created:     created,
		NavigateTo:  "/itineraries/" + strconv.FormatInt(id, 10),
		Response:    resp,
	}, nil
}

// createTarget creates the itinerary to save into and records it in the
// draft context.
func (r *Reconciler) createTarget(ctx context.Context, draft *CurrentItinerary) (int64, error) {
	var (
		it  Itinerary
		err error
	)
	if draft != nil && draft.HasFlightDates() {
		it, err = r.api.CreateItineraryFromFlightDates(ctx, FlightDatesRequest{
			DepartureDate: draft.DepartureDate,
			ReturnDate:    draft.ReturnDate,
			Title:         draft.Title,
			Origin:        draft.Origin,
			Destination:   draft.Destination,
		})
	} else {
		it, err = r.api.CreateItinerary(ctx)
	}
	if err != nil {
		return 0, wrap(ErrItineraryCreationFailed, "Failed to create itinerary", err)
	}
	if it.ID == 0 {
		return 0, &Error{
			Kind: ErrItineraryCreationFailed,
			Msg:  "Failed to create itinerary",
			Err:  errors.New("response carried no itinerary_id"),
		}
	}

	var next CurrentItinerary
	if draft != nil {
		next = *draft
	}
	id := it.ID
	next.ItineraryID = &id
	if next.Title == "" {
		next.Title = fmt.Sprintf("Itinerary %d", id)
	}
	if err := r.drafts.Set(ctx, next); err != nil {
		r.log.WarnContext(ctx, "recording created itinerary in draft", "itinerary_id", id, "error", err)
	}
	r.log.InfoContext(ctx, "itinerary created", "itinerary_id", id, "from_flight_dates", draft != nil && draft.HasFlightDates())
	return id, nil
}

// BuildPayload partitions staged items: flights are forwarded as recorded,
// everything else is projected to {name, price, type}. Name falls back from
// "name" to "title"; price from "price_per_night" to "nightly_price" to
// "price", defaulting to zero.
func BuildPayload(items []PendingItem) SavePayload {
	p := SavePayload{Flights: []record.Record{}, Items: []SaveItem{}}
	for _, it := range items {
		if it.Type == ItemFlight {
			data := it.Data
			if data == nil {
				data = record.Record{}
			}
			p.Flights = append(p.Flights, data)
			continue
		}
		p.Items = append(p.Items, SaveItem{
			Name:  record.String(it.Data, record.NameKeys...),
			Price: record.NumberOr(it.Data, 0, record.PriceKeys...),
			Type:  it.Type,
		})
	}
	return p
}
