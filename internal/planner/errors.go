package planner

import (
	"errors"
	"strings"
)

// Error kinds. Every failure returned by this package matches one of them
// with errors.Is.
var (
	ErrNoPendingItems           = errors.New("no pending items to save")
	ErrItineraryCreationFailed  = errors.New("failed to create itinerary")
	ErrSaveFailed               = errors.New("failed to save itinerary items")
	ErrSearchFailed             = errors.New("search failed")
	ErrAttractionsShapeMismatch = errors.New("unexpected attractions response")
	ErrSaveInProgress           = errors.New("a save is already in progress")
)

// Error carries an error kind together with the message shown to the user.
// Err is the underlying cause, kept for logging.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// serviceMessenger is implemented by collaborator errors that carry the
// message from the service response body.
type serviceMessenger interface {
	ServiceMessage() string
}

// wrap builds an *Error of kind, preferring the service's own message over
// fallback.
func wrap(kind error, fallback string, cause error) *Error {
	msg := fallback
	var sm serviceMessenger
	if errors.As(cause, &sm) {
		if m := strings.TrimSpace(sm.ServiceMessage()); m != "" {
			msg = m
		}
	}
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Message returns the text to show the user for err. Collaborator errors
// that carry a service message yield that message even when they never
// passed through this package.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var pe *Error
	if errors.As(err, &pe) && pe.Msg != "" {
		return pe.Msg
	}
	var sm serviceMessenger
	if errors.As(err, &sm) {
		if m := strings.TrimSpace(sm.ServiceMessage()); m != "" {
			return m
		}
	}
	switch {
	case errors.Is(err, ErrNoPendingItems):
		return "No pending items to save. Add flights, hotels or attractions first."
	case errors.Is(err, ErrSaveInProgress):
		return "A save is already in progress."
	case errors.Is(err, ErrAttractionsShapeMismatch):
		return "The attractions service returned an unexpected response."
	}
	return err.Error()
}
