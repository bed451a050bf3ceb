package coaches

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"epic-gym-system/app/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func newCoachTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	config.SetDB(db)

	app := fiber.New()
	app.Put("/api/coaches/:id", UpdateCoachAPI)
	return app, mock
}

func TestUpdateCoachAPI_PartialUpdateKeepsPayFields(t *testing.T) {
	app, mock := newCoachTestApp(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM coaches").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "role", "salary", "pt_rate", "phone", "is_active", "created_at", "updated_at",
		}).AddRow("c1", "Dana", "coach", 3000.0, 100.0, "", true, now, now))

	// Only the phone changed; salary and pt_rate must be written back
	// unchanged, not zeroed.
	mock.ExpectExec("UPDATE coaches").
		WithArgs("Dana", "coach", 3000.0, 100.0, "555", "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("PUT", "/api/coaches/c1", strings.NewReader(`{"phone":"555"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("pay fields were not preserved: %v", err)
	}
}

func TestUpdateCoachAPI_ExplicitZeroSalaryIsApplied(t *testing.T) {
	app, mock := newCoachTestApp(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM coaches").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "role", "salary", "pt_rate", "phone", "is_active", "created_at", "updated_at",
		}).AddRow("c1", "Dana", "coach", 3000.0, 100.0, "", true, now, now))

	mock.ExpectExec("UPDATE coaches").
		WithArgs("Dana", "coach", 0.0, 100.0, "", "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("PUT", "/api/coaches/c1", strings.NewReader(`{"salary":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("explicit zero salary was not applied: %v", err)
	}
}

func TestUpdateCoachAPI_RejectsNegativeSalary(t *testing.T) {
	app, mock := newCoachTestApp(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM coaches").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "role", "salary", "pt_rate", "phone", "is_active", "created_at", "updated_at",
		}).AddRow("c1", "Dana", "coach", 3000.0, 100.0, "", true, now, now))

	req := httptest.NewRequest("PUT", "/api/coaches/c1", strings.NewReader(`{"salary":-1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no UPDATE should run for a rejected payload: %v", err)
	}
}
