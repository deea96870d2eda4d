package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerInitialState(t *testing.T) {
	tracker := NewActivityTracker()

	_, ok := tracker.State("p1")
	assert.False(t, ok)
	assert.True(t, tracker.CanBook("p1"))
	assert.Equal(t, "Book Now", tracker.Badge("p1"))
}

func TestTrackerBookTransition(t *testing.T) {
	tracker := NewActivityTracker()

	state := tracker.Book("p1")
	assert.Equal(t, StatusBooked, state.Status)
	assert.Equal(t, 1, state.Position)
	assert.False(t, tracker.CanBook("p1"))
	assert.Equal(t, "Position: 1", tracker.Badge("p1"))

	// other activities stay untouched
	assert.True(t, tracker.CanBook("p2"))
}

func TestTrackerPaidTransition(t *testing.T) {
	tracker := NewActivityTracker()
	tracker.Book("p1")

	state := tracker.MarkPaid("p1")
	assert.Equal(t, StatusPaid, state.Status)
	assert.Equal(t, 1, state.Position)
	assert.Equal(t, "Position: 1", tracker.Badge("p1"))
}

func TestTrackerResetIsCosmetic(t *testing.T) {
	tracker := NewActivityTracker()
	tracker.Book("p1")
	tracker.MarkPaid("p1")

	state := tracker.Reset("p1")
	assert.Equal(t, StatusAvailable, state.Status)
	assert.Equal(t, 0, state.Position)
	assert.Equal(t, "Status Reset", tracker.Badge("p1"))
	assert.True(t, tracker.CanBook("p1"))
}

func TestTrackerPaidWithoutBooking(t *testing.T) {
	// a Paid signal can arrive via navigation params without a local book
	tracker := NewActivityTracker()

	state := tracker.MarkPaid("p9")
	assert.Equal(t, StatusPaid, state.Status)
	assert.Equal(t, 1, state.Position)
}
