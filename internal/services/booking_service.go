package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PlaygroundsCacheKey holds the cached playground list; every mutation of
// playground state must drop it.
const PlaygroundsCacheKey = "playgrounds:list"

// BookingInput carries the payment details supplied by the client.
type BookingInput struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	UserID int64   `json:"-"`
}

// BookingResult returns the created payment together with the updated
// playground, which the client uses to refresh its local state.
type BookingResult struct {
	Payment    models.Payment    `json:"payment"`
	Playground models.Playground `json:"playground"`
}

// BookingService menangani flow booking: buat payment + flip status playground.
type BookingService struct {
	DB               *sql.DB
	PlaygroundRepo   repositories.PlaygroundRepository
	PaymentRepo      repositories.PaymentRepository
	NotificationRepo repositories.NotificationRepository
	Cache            *redis.Client

	// Strict rejects booking an Occupied playground with a conflict.
	// Default false keeps the legacy behavior: no pre-check, a second
	// booking on the same playground also succeeds.
	Strict    bool
	RequestID string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Book looks up the playground, creates the payment record and marks the
// playground Occupied. Both writes share one transaction; the legacy server
// did them independently and could leave an orphan payment on a crash
// between the two.
func (s BookingService) Book(ctx context.Context, playgroundID int64, in BookingInput) (BookingResult, error) {
	if playgroundID <= 0 {
		return BookingResult{}, domain.ValidationError{Field: "playgroundId", Msg: "id tidak valid"}
	}

	method := strings.TrimSpace(in.Method)
	if !models.ValidPaymentMethod(method) {
		return BookingResult{}, domain.ValidationError{Field: "method", Msg: "metode pembayaran harus Card, Wallet, atau Offline"}
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.PaymentPending
	}
	switch status {
	case models.PaymentPending, models.PaymentCompleted, models.PaymentPaid:
	default:
		return BookingResult{}, domain.ValidationError{Field: "status", Msg: "status pembayaran tidak dikenal"}
	}

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return BookingResult{}, domain.InternalError{Msg: "gagal memulai transaksi", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	playground, err := s.PlaygroundRepo.GetByID(tx, playgroundID, true)
	if err != nil {
		return BookingResult{}, err
	}

	if s.Strict && playground.Status == models.PlaygroundOccupied {
		return BookingResult{}, domain.ConflictError{Resource: "playground", Msg: "sudah dibooking"}
	}

	amount := in.Amount
	if amount == 0 {
		amount = playground.BookingPrice
	} else if !utils.SameAmount(amount, playground.BookingPrice) {
		return BookingResult{}, domain.ValidationError{
			Field: "amount",
			Msg:   fmt.Sprintf("jumlah harus sama dengan harga booking (%s)", utils.FormatMoney(playground.BookingPrice)),
		}
	}

	payment := models.Payment{
		Reference:    uuid.NewString(),
		PlaygroundID: playground.ID,
		UserID:       in.UserID,
		Method:       method,
		Amount:       amount,
		Status:       status,
	}
	if err := s.PaymentRepo.Create(tx, &payment); err != nil {
		return BookingResult{}, domain.InternalError{Msg: "gagal menyimpan payment", Err: err}
	}

	affected, err := s.PlaygroundRepo.SetStatus(tx, playground.ID, models.PlaygroundOccupied, s.Strict)
	if err != nil {
		return BookingResult{}, domain.InternalError{Msg: "gagal update status playground", Err: err}
	}
	if s.Strict && affected == 0 {
		return BookingResult{}, domain.ConflictError{Resource: "playground", Msg: "sudah dibooking"}
	}

	if err := tx.Commit(); err != nil {
		return BookingResult{}, domain.InternalError{Msg: "gagal commit transaksi", Err: err}
	}

	playground.Status = models.PlaygroundOccupied
	payment.CreatedAt = utils.NowUTC()

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("playground_id=%d payment_id=%d method=%s", playground.ID, payment.ID, method))

	s.invalidateCache(ctx)
	s.notifyBooked(payment, playground)

	return BookingResult{Payment: payment, Playground: playground}, nil
}

func (s BookingService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, PlaygroundsCacheKey).Err(); err != nil {
		utils.LogEvent(s.RequestID, "booking", "cache_invalidate", "warning: "+err.Error())
	}
}

// notifyBooked writes an in-app notification for the booking user. Failure
// here must not fail the booking.
func (s BookingService) notifyBooked(payment models.Payment, playground models.Playground) {
	if payment.UserID <= 0 {
		return
	}
	n := models.Notification{
		UserID:  payment.UserID,
		Message: fmt.Sprintf("Booking %s diterima, menunggu pembayaran %s", playground.Name, utils.FormatMoney(payment.Amount)),
		Type:    "info",
	}
	if err := s.NotificationRepo.Create(&n); err != nil {
		utils.LogEvent(s.RequestID, "booking", "notify", "warning: "+err.Error())
	}
}
