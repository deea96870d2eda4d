package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const playgroundsCacheTTL = 60 * time.Second

type createPlaygroundRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Location     models.Location `json:"location"`
	Image        string          `json:"image"`
	BookingPrice float64         `json:"bookingPrice"`
	Status       string          `json:"status"`
}

// GET /api/playgrounds
func GetPlaygrounds(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	if cached, ok := playgroundsFromCache(c.Request.Context(), reqID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	repo := repositories.PlaygroundRepository{}
	playgrounds, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data playground", err)
		return
	}

	storePlaygroundsCache(c.Request.Context(), reqID, playgrounds)
	c.JSON(http.StatusOK, playgrounds)
}

// GET /api/playgrounds/:id
func GetPlaygroundByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	repo := repositories.PlaygroundRepository{}
	playground, err := repo.GetByID(nil, id, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, playground)
}

// POST /api/playgrounds (admin)
func CreatePlayground(c *gin.Context) {
	var req createPlaygroundRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	playground := models.Playground{
		Name:         utils.NormalizeSpace(req.Name),
		Description:  utils.TrimOrEmpty(req.Description),
		Location:     req.Location,
		Image:        utils.TrimOrEmpty(req.Image),
		BookingPrice: req.BookingPrice,
		Status:       utils.TrimOrEmpty(req.Status),
	}

	repo := repositories.PlaygroundRepository{}
	if err := repo.Create(&playground); err != nil {
		RespondDomainError(c, err)
		return
	}

	dropPlaygroundsCache(c.Request.Context(), middleware.GetRequestID(c))
	c.JSON(http.StatusCreated, playground)
}

// PUT /api/playgrounds/:id (admin)
func UpdatePlayground(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	var patch models.PlaygroundUpdate
	if !BindJSONOrError(c, &patch) {
		return
	}

	repo := repositories.PlaygroundRepository{}
	playground, err := repo.Update(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	dropPlaygroundsCache(c.Request.Context(), middleware.GetRequestID(c))
	c.JSON(http.StatusOK, playground)
}

// DELETE /api/playgrounds/:id (admin, soft delete)
func DeletePlayground(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	repo := repositories.PlaygroundRepository{}
	if err := repo.SoftDelete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	dropPlaygroundsCache(c.Request.Context(), middleware.GetRequestID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Playground deleted successfully"})
}

func playgroundsFromCache(ctx context.Context, reqID string) ([]models.Playground, bool) {
	if intconfig.Redis == nil {
		return nil, false
	}
	raw, err := intconfig.Redis.Get(ctx, services.PlaygroundsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var playgrounds []models.Playground
	if err := json.Unmarshal(raw, &playgrounds); err != nil {
		utils.LogEvent(reqID, "playground", "cache_read", "warning: "+err.Error())
		return nil, false
	}
	return playgrounds, true
}

func storePlaygroundsCache(ctx context.Context, reqID string, playgrounds []models.Playground) {
	if intconfig.Redis == nil {
		return
	}
	raw, err := json.Marshal(playgrounds)
	if err != nil {
		return
	}
	if err := intconfig.Redis.Set(ctx, services.PlaygroundsCacheKey, raw, playgroundsCacheTTL).Err(); err != nil {
		utils.LogEvent(reqID, "playground", "cache_write", "warning: "+err.Error())
	}
}

func dropPlaygroundsCache(ctx context.Context, reqID string) {
	if intconfig.Redis == nil {
		return
	}
	if err := intconfig.Redis.Del(ctx, services.PlaygroundsCacheKey).Err(); err != nil {
		utils.LogEvent(reqID, "playground", "cache_invalidate", "warning: "+err.Error())
	}
}
