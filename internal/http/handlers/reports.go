package handlers

import (
	"net/http"

	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/summary (admin)
func GetSummaryReport(c *gin.Context) {
	svc := services.ReportsService{}
	summary, err := svc.GetSummary()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghitung ringkasan", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
