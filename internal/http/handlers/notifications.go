package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type createNotificationRequest struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// GET /api/users/:id/notifications
func GetUserNotifications(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	repo := repositories.NotificationRepository{}
	notifications, err := repo.ListByUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// POST /api/notifications (admin)
func CreateNotification(c *gin.Context) {
	var req createNotificationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	n := models.Notification{
		UserID:  req.UserID,
		Message: utils.NormalizeSpace(req.Message),
		Type:    utils.TrimOrEmpty(req.Type),
	}

	repo := repositories.NotificationRepository{}
	if err := repo.Create(&n); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	repo := repositories.NotificationRepository{}
	if err := repo.MarkRead(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifikasi ditandai dibaca"})
}
