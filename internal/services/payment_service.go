package services

import (
	"fmt"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// PaymentService menangani penyelesaian pembayaran.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	RequestID   string
}

// Complete marks the payment Paid and returns the fresh record. There is
// deliberately no prior-status check: the legacy app re-marks an already
// Paid payment without complaint, and callers rely on that.
func (s PaymentService) Complete(paymentID int64) (models.Payment, error) {
	payment, err := s.PaymentRepo.GetByID(nil, paymentID)
	if err != nil {
		return models.Payment{}, err
	}

	if payment.Terminal() {
		utils.LogEvent(s.RequestID, "payment", "complete",
			fmt.Sprintf("payment_id=%d sudah %s, di-mark Paid lagi", payment.ID, payment.Status))
	}

	if err := s.PaymentRepo.MarkPaid(payment.ID); err != nil {
		return models.Payment{}, err
	}

	payment.Status = models.PaymentPaid
	utils.LogEvent(s.RequestID, "payment", "complete", fmt.Sprintf("payment_id=%d", payment.ID))
	return payment, nil
}
