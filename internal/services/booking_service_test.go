package services

import (
	"context"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
)

func availablePlaygroundRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "latitude", "longitude", "image",
		"booking_price", "status", "created_at", "updated_at",
	}).AddRow(1, "City Park Playground", "A great place", "40.748817", "-73.985428", "/img/p1.png",
		10.0, "Available", "2025-01-01 08:00:00", "2025-01-01 08:00:00")
}

func occupiedPlaygroundRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "latitude", "longitude", "image",
		"booking_price", "status", "created_at", "updated_at",
	}).AddRow(1, "City Park Playground", "A great place", "40.748817", "-73.985428", "/img/p1.png",
		10.0, "Occupied", "2025-01-01 08:00:00", "2025-01-01 08:00:00")
}

func TestBookAvailablePlayground(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rdb, rmock := redismock.NewClientMock()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(1)).
		WillReturnRows(availablePlaygroundRows())
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE playgrounds SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	rmock.ExpectDel(PlaygroundsCacheKey).SetVal(1)

	svc := BookingService{DB: db, Cache: rdb}
	result, err := svc.Book(context.Background(), 1, BookingInput{Method: "Wallet", Amount: 10.0})
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}
	if result.Payment.ID != 7 {
		t.Fatalf("payment id not taken from insert, got %d", result.Payment.ID)
	}
	if result.Payment.Status != models.PaymentPending {
		t.Fatalf("payment status should default to Pending, got %q", result.Payment.Status)
	}
	if result.Payment.Reference == "" {
		t.Fatalf("payment reference should be generated")
	}
	if result.Playground.Status != models.PlaygroundOccupied {
		t.Fatalf("playground should be Occupied after booking, got %q", result.Playground.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
	if err := rmock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet redis expectations: %v", err)
	}
}

func TestBookMissingPlaygroundCreatesNoPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	svc := BookingService{DB: db}
	_, err = svc.Book(context.Background(), 99, BookingInput{Method: "Card"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	// no INSERT expectation registered: a payment write would fail the mock
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookOccupiedPlaygroundAllowedByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// perilaku lama: tidak ada pre-check, booking kedua tetap sukses
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(1)).
		WillReturnRows(occupiedPlaygroundRows())
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectExec("UPDATE playgrounds SET status").
		WillReturnResult(sqlmock.NewResult(0, 0)) // status unchanged
	mock.ExpectCommit()

	svc := BookingService{DB: db}
	result, err := svc.Book(context.Background(), 1, BookingInput{Method: "Card"})
	if err != nil {
		t.Fatalf("lax mode must allow double booking, got %v", err)
	}
	if result.Payment.Amount != 10.0 {
		t.Fatalf("amount should default to booking price, got %v", result.Payment.Amount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookOccupiedPlaygroundStrictConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(1)).
		WillReturnRows(occupiedPlaygroundRows())
	mock.ExpectRollback()

	svc := BookingService{DB: db, Strict: true}
	_, err = svc.Book(context.Background(), 1, BookingInput{Method: "Card"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict in strict mode, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookStrictLostRaceConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// snapshot masih Available, tapi compare-and-set kalah balapan
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(1)).
		WillReturnRows(availablePlaygroundRows())
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE playgrounds SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	svc := BookingService{DB: db, Strict: true}
	_, err = svc.Book(context.Background(), 1, BookingInput{Method: "Wallet"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict when CAS affects no rows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookValidation(t *testing.T) {
	svc := BookingService{}

	if _, err := svc.Book(context.Background(), 0, BookingInput{Method: "Card"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad id, got %v", err)
	}
	if _, err := svc.Book(context.Background(), 1, BookingInput{Method: "Cash"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown method, got %v", err)
	}
	if _, err := svc.Book(context.Background(), 1, BookingInput{Method: "Card", Status: "Refunded"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestBookAmountMustMatchBookingPrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(1)).
		WillReturnRows(availablePlaygroundRows())
	mock.ExpectRollback()

	svc := BookingService{DB: db}
	_, err = svc.Book(context.Background(), 1, BookingInput{Method: "Wallet", Amount: 5.0})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for wrong amount, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
