package students

import (
	"net/http/httptest"
	"strings"
	"testing"

	"epic-gym-system/app/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func newStudentTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	config.SetDB(db)

	app := fiber.New()
	app.Post("/api/students", CreateStudentAPI)
	return app, mock
}

func TestCreateStudentAPI_RejectsMissingName(t *testing.T) {
	app, mock := newStudentTestApp(t)

	req := httptest.NewRequest("POST", "/api/students", strings.NewReader(`{"plan_months":2}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	// No expectations were set: validation must fail before any insert.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no statements should run for an invalid payload: %v", err)
	}
}

func TestCreateStudentAPI_RejectsMalformedScheduleTimes(t *testing.T) {
	app, mock := newStudentTestApp(t)

	body := `{"full_name":"Sam","schedule":[{"day":"monday","start_time":"ab:cd","end_time":"19:00"}]}`
	req := httptest.NewRequest("POST", "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no statements should run for a malformed schedule: %v", err)
	}
}
