package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentRepository) runner(q Runner) Runner {
	if q != nil {
		return q
	}
	return r.db()
}

const paymentSelect = `
	SELECT id,
	       COALESCE(reference,''),
	       COALESCE(playground_id,0),
	       COALESCE(user_id,0),
	       COALESCE(method,''),
	       COALESCE(amount,0),
	       COALESCE(status,'Pending'),
	       created_at
	FROM payments`

func scanPayment(row interface{ Scan(dest ...any) error }) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.Reference,
		&p.PlaygroundID,
		&p.UserID,
		&p.Method,
		&p.Amount,
		&p.Status,
		&p.CreatedAt,
	)
	return p, err
}

// Create inserts a payment row. Pass a *sql.Tx so the insert shares the
// booking transaction.
func (r PaymentRepository) Create(q Runner, p *models.Payment) error {
	if p.PlaygroundID <= 0 {
		return domain.ValidationError{Field: "playground_id", Msg: "id tidak valid"}
	}
	if p.Status == "" {
		p.Status = models.PaymentPending
	}

	var userID any
	if p.UserID > 0 {
		userID = p.UserID
	}

	res, err := r.runner(q).Exec(`
		INSERT INTO payments (reference, playground_id, user_id, method, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, p.Reference, p.PlaygroundID, userID, p.Method, p.Amount, p.Status)
	if err != nil {
		return err
	}
	p.ID, _ = res.LastInsertId()
	return nil
}

// GetByID fetches a payment by primary key.
func (r PaymentRepository) GetByID(q Runner, id int64) (models.Payment, error) {
	if id <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}

	p, err := scanPayment(r.runner(q).QueryRow(paymentSelect+` WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "payment"}
		}
		return models.Payment{}, err
	}
	return p, nil
}

// List returns payments, newest first, for the admin panel.
func (r PaymentRepository) List() ([]models.Payment, error) {
	rows, err := r.db().Query(paymentSelect + ` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// MarkPaid sets the payment status to Paid regardless of the prior status.
// The legacy app re-marks completed payments without complaint; callers
// that care about terminal states check Payment.Terminal first.
func (r PaymentRepository) MarkPaid(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	res, err := r.db().Exec(`UPDATE payments SET status='Paid' WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports 0 affected rows when values are unchanged, so an
		// already-Paid payment still counts as found.
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM payments WHERE id=?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "payment"}
		}
	}
	return nil
}
