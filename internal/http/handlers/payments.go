package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PUT /api/payments/:paymentId/complete
func CompletePayment(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("paymentId"), 10, 64)
	if err != nil || paymentID <= 0 {
		RespondError(c, http.StatusBadRequest, "paymentId tidak valid", err)
		return
	}

	svc := services.PaymentService{RequestID: middleware.GetRequestID(c)}
	payment, err := svc.Complete(paymentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment completed successfully",
		"payment": payment,
	})
}

// GET /api/payments (admin)
func GetPayments(c *gin.Context) {
	repo := repositories.PaymentRepository{}
	payments, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data payment", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/payments/:paymentId
func GetPaymentByID(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("paymentId"), 10, 64)
	if err != nil || paymentID <= 0 {
		RespondError(c, http.StatusBadRequest, "paymentId tidak valid", err)
		return
	}

	repo := repositories.PaymentRepository{}
	payment, err := repo.GetByID(nil, paymentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GET /api/payments/:paymentId/receipt
func GetPaymentReceiptPDF(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("paymentId"), 10, 64)
	if err != nil || paymentID <= 0 {
		RespondError(c, http.StatusBadRequest, "paymentId tidak valid", err)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateReceipt(paymentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
