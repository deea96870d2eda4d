package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userSelect = `
	SELECT id,
	       COALESCE(name,''),
	       COALESCE(email,''),
	       COALESCE(password_hash,''),
	       COALESCE(whatsapp,''),
	       COALESCE(address,''),
	       COALESCE(agree_to_terms,0),
	       COALESCE(role,'user'),
	       COALESCE(status,'active'),
	       created_at,
	       updated_at
	FROM users`

func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Whatsapp,
		&u.Address,
		&u.AgreeToTerms,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	u, err := scanUser(r.db().QueryRow(userSelect+` WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email wajib diisi"}
	}
	u, err := scanUser(r.db().QueryRow(userSelect+` WHERE email=? LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(userSelect + ` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// EmailTaken checks uniqueness before registration.
func (r UserRepository) EmailTaken(email string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=?`, strings.TrimSpace(email)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepository) Create(u *models.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "nama wajib diisi"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return domain.ValidationError{Field: "email", Msg: "email wajib diisi"}
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if u.Status == "" {
		u.Status = "active"
	}

	res, err := r.db().Exec(`
		INSERT INTO users (name, email, password_hash, whatsapp, address, agree_to_terms, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`,
		u.Name,
		u.Email,
		u.PasswordHash,
		intdb.NullIfEmpty(u.Whatsapp),
		intdb.NullIfEmpty(u.Address),
		u.AgreeToTerms,
		u.Role,
		u.Status,
	)
	if err != nil {
		return err
	}
	u.ID, _ = res.LastInsertId()
	return nil
}

// UserUpdate supports PATCH-style updates via key presence.
type UserUpdate struct {
	Name     *string `json:"name"`
	Whatsapp *string `json:"whatsapp"`
	Address  *string `json:"address"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

func (r UserRepository) Update(id int64, patch UserUpdate) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
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
	if patch.Whatsapp != nil {
		set("whatsapp", intdb.NullIfEmpty(*patch.Whatsapp))
	}
	if patch.Address != nil {
		set("address", intdb.NullIfEmpty(*patch.Address))
	}
	if patch.Role != nil {
		set("role", *patch.Role)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}

	if len(columns) > 0 {
		values = append(values, id)
		if _, err := r.db().Exec(
			`UPDATE users SET `+strings.Join(columns, ", ")+`, updated_at=NOW() WHERE id=?`,
			values...,
		); err != nil {
			return models.User{}, err
		}
	}

	return r.GetByID(id)
}

func (r UserRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// SetResetToken stores a password-recovery token for the user. Older
// databases may not carry the reset_token column yet.
func (r UserRepository) SetResetToken(id int64, token string) error {
	if !intdb.HasColumn(r.db(), "users", "reset_token") {
		return domain.InternalError{Msg: "kolom reset_token belum ada, jalankan migrasi dulu"}
	}
	_, err := r.db().Exec(`UPDATE users SET reset_token=?, updated_at=NOW() WHERE id=?`, intdb.NullIfEmpty(token), id)
	return err
}
