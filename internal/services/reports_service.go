package services

import (
	"database/sql"

	intconfig "backend/internal/config"
)

// SummaryReport feeds the admin panel charts.
type SummaryReport struct {
	Playgrounds struct {
		Total     int `json:"total"`
		Available int `json:"available"`
		Occupied  int `json:"occupied"`
	} `json:"playgrounds"`
	Payments struct {
		Total     int     `json:"total"`
		Pending   int     `json:"pending"`
		Paid      int     `json:"paid"`
		Completed int     `json:"completed"`
		Revenue   float64 `json:"revenue"`
	} `json:"payments"`
	Users int `json:"users"`
}

type ReportsService struct {
	DB *sql.DB
}

func (s ReportsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// GetSummary aggregates playground/payment/user counts. Revenue only counts
// payments that reached Paid.
func (s ReportsService) GetSummary() (SummaryReport, error) {
	var out SummaryReport
	db := s.db()

	err := db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(status='Available'),0),
		       COALESCE(SUM(status='Occupied'),0)
		FROM playgrounds
		WHERE deleted_at IS NULL
	`).Scan(&out.Playgrounds.Total, &out.Playgrounds.Available, &out.Playgrounds.Occupied)
	if err != nil {
		return out, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(status='Pending'),0),
		       COALESCE(SUM(status='Paid'),0),
		       COALESCE(SUM(status='Completed'),0),
		       COALESCE(SUM(CASE WHEN status='Paid' THEN amount ELSE 0 END),0)
		FROM payments
	`).Scan(&out.Payments.Total, &out.Payments.Pending, &out.Payments.Paid, &out.Payments.Completed, &out.Payments.Revenue)
	if err != nil {
		return out, err
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&out.Users); err != nil {
		return out, err
	}

	return out, nil
}
