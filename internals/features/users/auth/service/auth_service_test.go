package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return db, mock
}

func newAuthApp(db *gorm.DB) *fiber.App {
	cfg := testConfig(time.Minute)
	app := fiber.New()
	app.Post("/auth/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/auth/login", func(c *fiber.Ctx) error { return Login(db, cfg, c) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
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

func userColumns() []string {
	return []string{"id", "user_name", "email", "password", "role", "created_at", "updated_at"}
}

func TestRegisterSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAuthApp(db)

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	resp, body := postJSON(t, app, "/auth/register", map[string]any{
		"user_name": "alice",
		"email":     "a@x.com",
		"password":  "secret1",
		"role":      "student",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRegisterConflict(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAuthApp(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(uuid.New().String(), "alice", "a@x.com", "hash", "student", now, now))

	resp, body := postJSON(t, app, "/auth/register", map[string]any{
		"user_name": "alice",
		"email":     "other@x.com",
		"password":  "secret1",
		"role":      "student",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
}

func TestRegisterRejectsBadRole(t *testing.T) {
	db, _ := newMockDB(t)
	app := newAuthApp(db)

	resp, _ := postJSON(t, app, "/auth/register", map[string]any{
		"user_name": "alice",
		"email":     "a@x.com",
		"password":  "secret1",
		"role":      "superuser",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLoginSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAuthApp(db)

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(uuid.New().String(), "alice", "a@x.com", hash, "student", now, now))

	resp, body := postJSON(t, app, "/auth/login", map[string]any{
		"email":    "a@x.com",
		"password": "secret1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", resp.StatusCode, body)
	}

	data, _ := body["data"].(map[string]any)
	if data == nil {
		t.Fatalf("missing data in %v", body)
	}
	if tok, _ := data["accessToken"].(string); tok == "" {
		t.Fatal("missing accessToken")
	}
	user, _ := data["user"].(map[string]any)
	if user == nil || user["role"] != "student" {
		t.Fatalf("user = %v, want role student", user)
	}
	if _, ok := user["password"]; ok {
		t.Fatal("password hash leaked in response")
	}
}

// Unknown email and wrong password must be indistinguishable to the client.
func TestLoginFailureShapeIsUniform(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAuthApp(db)

	// Unknown email.
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()))
	respUnknown, bodyUnknown := postJSON(t, app, "/auth/login", map[string]any{
		"email":    "nobody@x.com",
		"password": "secret1",
	})

	// Known email, wrong password.
	hash, _ := HashPassword("secret1")
	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(uuid.New().String(), "alice", "a@x.com", hash, "student", now, now))
	respWrong, bodyWrong := postJSON(t, app, "/auth/login", map[string]any{
		"email":    "a@x.com",
		"password": "not-it",
	})

	if respUnknown.StatusCode != http.StatusUnauthorized || respWrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", respUnknown.StatusCode, respWrong.StatusCode)
	}
	if bodyUnknown["message"] != bodyWrong["message"] {
		t.Fatalf("messages differ: %v vs %v", bodyUnknown["message"], bodyWrong["message"])
	}
}
