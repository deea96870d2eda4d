package models

import "time"

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentPaid      = "Paid"
)

// Payment records a booking charge against a playground.
type Payment struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	PlaygroundID int64     `json:"playground_id"`
	UserID       int64     `json:"user_id,omitempty"`
	Method       string    `json:"method"` // Card / Wallet / Offline
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"timestamp"`
}

// ValidPaymentMethod reports whether method is one the app accepts.
func ValidPaymentMethod(method string) bool {
	switch method {
	case "Card", "Wallet", "Offline":
		return true
	default:
		return false
	}
}

// Terminal reports whether the payment already reached a final status.
// Completion does not check this (see booking service notes), it exists
// for reporting only.
func (p Payment) Terminal() bool {
	return p.Status == PaymentPaid || p.Status == PaymentCompleted
}
