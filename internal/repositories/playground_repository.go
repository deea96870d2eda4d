package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

// Runner is satisfied by *sql.DB and *sql.Tx so repository calls can join
// an open transaction.
type Runner interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type PlaygroundRepository struct {
	DB *sql.DB
}

func (r PlaygroundRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PlaygroundRepository) runner(q Runner) Runner {
	if q != nil {
		return q
	}
	return r.db()
}

const playgroundSelect = `
	SELECT id,
	       COALESCE(name,''),
	       COALESCE(description,''),
	       COALESCE(latitude,''),
	       COALESCE(longitude,''),
	       COALESCE(image,''),
	       COALESCE(booking_price,0),
	       COALESCE(status,'Available'),
	       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
	       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')
	FROM playgrounds`

func scanPlayground(row interface{ Scan(dest ...any) error }) (models.Playground, error) {
	var p models.Playground
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Location.Latitude,
		&p.Location.Longitude,
		&p.Image,
		&p.BookingPrice,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// List returns all playgrounds that are not soft-deleted.
func (r PlaygroundRepository) List() ([]models.Playground, error) {
	rows, err := r.db().Query(playgroundSelect + `
	WHERE deleted_at IS NULL
	ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playgrounds := []models.Playground{}
	for rows.Next() {
		p, err := scanPlayground(rows)
		if err != nil {
			return nil, err
		}
		playgrounds = append(playgrounds, p)
	}
	return playgrounds, rows.Err()
}

// GetByID fetches a playground by primary key. Pass a *sql.Tx to read
// inside an open transaction (booking path uses FOR UPDATE).
func (r PlaygroundRepository) GetByID(q Runner, id int64, forUpdate bool) (models.Playground, error) {
	if id <= 0 {
		return models.Playground{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}

	query := playgroundSelect + `
	WHERE id=? AND deleted_at IS NULL
	LIMIT 1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	p, err := scanPlayground(r.runner(q).QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Playground{}, domain.NotFoundError{Resource: "playground"}
		}
		return models.Playground{}, err
	}
	return p, nil
}

// Create inserts a new playground. Status defaults to Available.
func (r PlaygroundRepository) Create(p *models.Playground) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "nama wajib diisi"}
	}
	if p.BookingPrice <= 0 {
		return domain.ValidationError{Field: "bookingPrice", Msg: "harga booking harus positif"}
	}
	if p.Status == "" {
		p.Status = models.PlaygroundAvailable
	}

	res, err := r.db().Exec(`
		INSERT INTO playgrounds (name, description, latitude, longitude, image, booking_price, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`,
		p.Name,
		intdb.NullIfEmpty(p.Description),
		p.Location.Latitude,
		p.Location.Longitude,
		intdb.NullIfEmpty(p.Image),
		p.BookingPrice,
		p.Status,
	)
	if err != nil {
		return err
	}
	p.ID, _ = res.LastInsertId()
	return nil
}

// Update applies a PATCH-style update using key presence and returns the
// fresh row.
func (r PlaygroundRepository) Update(id int64, patch models.PlaygroundUpdate) (models.Playground, error) {
	if id <= 0 {
		return models.Playground{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}

	columns := []string{}
	values := []any{}
	set := func(col string, val any) {
		columns = append(columns, col+"=?")
		values = append(values, val)
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Latitude != nil {
		set("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		set("longitude", *patch.Longitude)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}
	if patch.BookingPrice != nil {
		if *patch.BookingPrice <= 0 {
			return models.Playground{}, domain.ValidationError{Field: "bookingPrice", Msg: "harga booking harus positif"}
		}
		set("booking_price", *patch.BookingPrice)
	}
	if patch.Status != nil {
		if *patch.Status != models.PlaygroundAvailable && *patch.Status != models.PlaygroundOccupied {
			return models.Playground{}, domain.ValidationError{Field: "status", Msg: "status tidak dikenal"}
		}
		set("status", *patch.Status)
	}

	if len(columns) > 0 {
		values = append(values, id)
		res, err := r.db().Exec(
			`UPDATE playgrounds SET `+strings.Join(columns, ", ")+`, updated_at=NOW() WHERE id=? AND deleted_at IS NULL`,
			values...,
		)
		if err != nil {
			return models.Playground{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			// row may exist with identical values; re-read below decides
			if _, err := r.GetByID(nil, id, false); err != nil {
				return models.Playground{}, err
			}
		}
	}

	return r.GetByID(nil, id, false)
}

// SoftDelete marks a playground deleted without dropping the row, so past
// payments keep a valid reference.
func (r PlaygroundRepository) SoftDelete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	res, err := r.db().Exec(`UPDATE playgrounds SET deleted_at=NOW() WHERE id=? AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "playground"}
	}
	return nil
}

// SetStatus flips the playground status. With onlyIfAvailable the update is
// a compare-and-set on status='Available'; the caller inspects the affected
// row count to detect a lost race.
func (r PlaygroundRepository) SetStatus(q Runner, id int64, status string, onlyIfAvailable bool) (int64, error) {
	if status != models.PlaygroundAvailable && status != models.PlaygroundOccupied {
		return 0, domain.ValidationError{Field: "status", Msg: fmt.Sprintf("status %q tidak dikenal", status)}
	}

	query := `UPDATE playgrounds SET status=?, updated_at=NOW() WHERE id=? AND deleted_at IS NULL`
	if onlyIfAvailable {
		query += ` AND status='Available'`
	}

	res, err := r.runner(q).Exec(query, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
