package repositories

import (
	"testing"

	"backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPlaygroundGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM playgrounds").WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := PlaygroundRepository{DB: db}
	_, err = repo.GetByID(nil, 123, false)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaygroundListSkipsDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "latitude", "longitude", "image",
		"booking_price", "status", "created_at", "updated_at",
	}).
		AddRow(1, "City Park Playground", "", "40.748817", "-73.985428", "", 2.5, "Available", "", "").
		AddRow(2, "Lakeside Playground", "", "34.052235", "-118.243683", "", 5.0, "Occupied", "", "")

	mock.ExpectQuery("SELECT (.+) FROM playgrounds(.+)deleted_at IS NULL").
		WillReturnRows(rows)

	repo := PlaygroundRepository{DB: db}
	playgrounds, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(playgrounds) != 2 {
		t.Fatalf("expected 2 playgrounds, got %d", len(playgrounds))
	}
	if playgrounds[0].Location.Latitude != "40.748817" {
		t.Fatalf("latitude not scanned, got %q", playgrounds[0].Location.Latitude)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaygroundSoftDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE playgrounds SET deleted_at=NOW\\(\\)").WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PlaygroundRepository{DB: db}
	if err := repo.SoftDelete(9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaygroundSetStatusCompareAndSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE playgrounds SET status=(.+)AND status='Available'").
		WithArgs("Occupied", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PlaygroundRepository{DB: db}
	affected, err := repo.SetStatus(nil, 1, "Occupied", true)
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows on lost race, got %d", affected)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaygroundSetStatusRejectsUnknown(t *testing.T) {
	repo := PlaygroundRepository{}
	if _, err := repo.SetStatus(nil, 1, "Closed", false); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
