package repositories

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func validNotificationType(t string) bool {
	switch t {
	case "info", "warning", "alert":
		return true
	default:
		return false
	}
}

func (r NotificationRepository) Create(n *models.Notification) error {
	if n.UserID <= 0 {
		return domain.ValidationError{Field: "user_id", Msg: "id tidak valid"}
	}
	if strings.TrimSpace(n.Message) == "" {
		return domain.ValidationError{Field: "message", Msg: "pesan wajib diisi"}
	}
	if n.Type == "" {
		n.Type = "info"
	}
	if !validNotificationType(n.Type) {
		return domain.ValidationError{Field: "type", Msg: "tipe notifikasi tidak dikenal"}
	}

	res, err := r.db().Exec(`
		INSERT INTO notifications (user_id, message, type, is_read, created_at)
		VALUES (?, ?, ?, 0, NOW())
	`, n.UserID, n.Message, n.Type)
	if err != nil {
		return err
	}
	n.ID, _ = res.LastInsertId()
	return nil
}

func (r NotificationRepository) ListByUser(userID int64) ([]models.Notification, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "id tidak valid"}
	}

	rows, err := r.db().Query(`
		SELECT id, user_id, COALESCE(message,''), COALESCE(type,'info'), COALESCE(is_read,0), created_at
		FROM notifications
		WHERE user_id=?
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r NotificationRepository) MarkRead(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	res, err := r.db().Exec(`UPDATE notifications SET is_read=1 WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM notifications WHERE id=?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "notification"}
		}
	}
	return nil
}
