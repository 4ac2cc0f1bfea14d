// Package localstore is the client's durable key/value storage: the place the
// planner keeps the pending stage, the draft itinerary and the last-saved
// record between CLI invocations.
package localstore

import (
	"context"
	"errors"
	"time"
)

// Keys used by the planner. Values are JSON documents.
const (
	KeyPendingItems       = "pending_items"
	KeyCurrentItinerary   = "current_itinerary"
	KeyLastSavedItinerary = "last_saved_itinerary"
)

// LeaseSave guards a save of the pending stage.
const LeaseSave = "save"

// ErrLocked is returned by Lock while another holder owns an unexpired lease.
var ErrLocked = errors.New("lease is held")

// Store is a string-keyed blob store. Get reports ok=false for a missing key;
// Delete of a missing key is not an error.
//
// Lock takes the named lease for ttl and returns the function that gives it
// back. Every handle on the same underlying store sees the same leases, so a
// lease held by one process fails Lock in another with ErrLocked until it is
// released or expires.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Lock(ctx context.Context, name string, ttl time.Duration) (release func(context.Context) error, err error)
}
