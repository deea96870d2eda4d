package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "backend/internal/config"
	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func newBookingTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/api/bookings/:playgroundId", CreateBooking)
	r.PUT("/api/payments/:paymentId/complete", CompletePayment)
	return r
}

func TestCreateBookingEndpoint(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "latitude", "longitude", "image",
		"booking_price", "status", "created_at", "updated_at",
	}).AddRow(1, "City Park Playground", "", "40.748817", "-73.985428", "", 10.0, "Available", "", "")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(1)).WillReturnRows(rows)
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE playgrounds SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := newBookingTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/1",
		strings.NewReader(`{"method":"Wallet","amount":10.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var result services.BookingResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.Payment.Status != "Pending" {
		t.Fatalf("payment status should be Pending, got %q", result.Payment.Status)
	}
	if result.Playground.Status != "Occupied" {
		t.Fatalf("playground should be Occupied, got %q", result.Playground.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingEndpointPlaygroundMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	r := newBookingTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/99",
		strings.NewReader(`{"method":"Card"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompletePaymentEndpointMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery("SELECT (.+) FROM payments").WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newBookingTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/payments/77/complete", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
