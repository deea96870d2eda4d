package models

import "time"

const (
	PlaygroundAvailable = "Available"
	PlaygroundOccupied  = "Occupied"
)

// Playground is a bookable location with a single occupancy slot.
// Latitude/longitude are kept as decimal strings, matching what the map
// screen sends.
type Playground struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     Location `json:"location"`
	Image        string   `json:"image"`
	BookingPrice float64  `json:"bookingPrice"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// PlaygroundUpdate supports PATCH-style updates via key presence.
type PlaygroundUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Latitude     *string  `json:"latitude"`
	Longitude    *string  `json:"longitude"`
	Image        *string  `json:"image"`
	BookingPrice *float64 `json:"bookingPrice"`
	Status       *string  `json:"status"`
}

// Notification mirrors the in-app notification record.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // info / warning / alert
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
