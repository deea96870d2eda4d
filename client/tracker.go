// Package client is the Go counterpart of the mobile app's booking flow:
// a small REST client plus the per-session activity tracker that backs the
// "Book Now" / queue-position badge.
package client

import (
	"fmt"
	"sync"
)

// Display statuses for the activity badge. These mirror what the app
// renders and are never validated against server state; the authoritative
// playground status always comes from the API response.
const (
	StatusBooked    = "booked"
	StatusPaid      = "Paid"
	StatusAvailable = "Available"
)

// ActivityState is the badge state for one playground/activity.
type ActivityState struct {
	Status   string
	Position int
}

// ActivityTracker keeps per-session display state. It is rebuilt from
// scratch every session and may drift from the server record (the server
// never flips Occupied back to Available; Reset here is cosmetic only).
type ActivityTracker struct {
	mu      sync.Mutex
	entries map[string]ActivityState
}

func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{entries: map[string]ActivityState{}}
}

// Book records a local booking and hands out a placeholder queue position.
func (t *ActivityTracker) Book(id string) ActivityState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := ActivityState{Status: StatusBooked, Position: 1}
	t.entries[id] = state
	return state
}

// MarkPaid reflects a Paid payment signal for the given activity.
func (t *ActivityTracker) MarkPaid(id string) ActivityState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := ActivityState{Status: StatusPaid, Position: 1}
	t.entries[id] = state
	return state
}

// Reset clears the local status back to Available with no queue position.
func (t *ActivityTracker) Reset(id string) ActivityState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := ActivityState{Status: StatusAvailable, Position: 0}
	t.entries[id] = state
	return state
}

// State returns the tracked state for id, false when never touched.
func (t *ActivityTracker) State(id string) (ActivityState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.entries[id]
	return state, ok
}

// CanBook reports whether the Book Now action should be shown.
func (t *ActivityTracker) CanBook(id string) bool {
	state, ok := t.State(id)
	if !ok {
		return true
	}
	return state.Status == StatusAvailable
}

// Badge renders the label the app shows next to an activity.
func (t *ActivityTracker) Badge(id string) string {
	state, ok := t.State(id)
	if !ok {
		return "Book Now"
	}
	switch state.Status {
	case StatusBooked, StatusPaid:
		return fmt.Sprintf("Position: %d", state.Position)
	default:
		return "Status Reset"
	}
}
