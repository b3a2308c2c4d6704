package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newCourseApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	ctrl := NewInstructorCourseController(db)
	app := fiber.New()
	app.Post("/add", ctrl.AddNewCourse)
	return app, mock
}

func postCourse(t *testing.T, app *fiber.App, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	return resp, decoded
}

// An omitted capacity must not fail validation; the handler fills in 30.
func TestAddCourseDefaultsCapacity(t *testing.T) {
	app, mock := newCourseApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "courses" WHERE code = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	resp, body := postCourse(t, app, map[string]any{
		"code": "CS101",
		"name": "Intro to Computer Science",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", resp.StatusCode, body)
	}

	data, _ := body["data"].(map[string]any)
	if data == nil {
		t.Fatalf("missing data in %v", body)
	}
	if data["capacity"] != float64(30) {
		t.Fatalf("capacity = %v, want 30", data["capacity"])
	}
	if data["is_active"] != true {
		t.Fatalf("is_active = %v, want true", data["is_active"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAddCourseRejectsNegativeCapacity(t *testing.T) {
	app, _ := newCourseApp(t)

	resp, body := postCourse(t, app, map[string]any{
		"code":     "CS101",
		"name":     "Intro to Computer Science",
		"capacity": -1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["message"] != "Validation failed" {
		t.Fatalf("message = %v", body["message"])
	}
}
