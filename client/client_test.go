package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/bookings/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"payment": {"id": 7, "reference": "ref-7", "playground_id": 1, "method": "Wallet", "amount": 10.0, "status": "Pending"},
			"playground": {"id": 1, "name": "City Park Playground", "status": "Occupied", "bookingPrice": 10.0}
		}`))
	})
	mux.HandleFunc("POST /api/bookings/99", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "playground not found"}`))
	})
	mux.HandleFunc("PUT /api/payments/7/complete", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "Payment completed successfully",
			"payment": {"id": 7, "status": "Paid", "amount": 10.0}
		}`))
	})
	mux.HandleFunc("GET /api/playgrounds", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "City Park Playground", "status": "Available", "bookingPrice": 10.0,
			 "location": {"latitude": "40.748817", "longitude": "-73.985428"}}
		]`))
	})

	return httptest.NewServer(mux)
}

func TestClientBookingFlow(t *testing.T) {
	srv := newStubServer(t)
	defer srv.Close()

	c := New(srv.URL)
	flow := BookingFlow{Client: c, Tracker: NewActivityTracker()}
	ctx := context.Background()

	playgrounds, err := c.Playgrounds(ctx)
	require.NoError(t, err)
	require.Len(t, playgrounds, 1)
	assert.Equal(t, "Available", playgrounds[0].Status)
	assert.Equal(t, "40.748817", playgrounds[0].Location.Latitude)

	booked, err := flow.Book(ctx, 1, "Wallet")
	require.NoError(t, err)
	assert.Equal(t, "Pending", booked.Payment.Status)
	assert.Equal(t, "Occupied", booked.Playground.Status)
	assert.Equal(t, "Position: 1", flow.Tracker.Badge("1"))

	paid, err := flow.Pay(ctx, 1, booked.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paid", paid.Payment.Status)

	state, ok := flow.Tracker.State("1")
	require.True(t, ok)
	assert.Equal(t, StatusPaid, state.Status)
	assert.Equal(t, 1, state.Position)
}

func TestClientBookMissingPlayground(t *testing.T) {
	srv := newStubServer(t)
	defer srv.Close()

	c := New(srv.URL)
	flow := BookingFlow{Client: c, Tracker: NewActivityTracker()}

	_, err := flow.Book(context.Background(), 99, "Card")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// failed bookings never touch the local badge
	assert.Equal(t, "Book Now", flow.Tracker.Badge("99"))
}
