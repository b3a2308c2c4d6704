package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	helper "coursehub_backend/internals/helpers"
)

type widget struct {
	ID   string `gorm:"primaryKey;default:gen_random_uuid()"`
	Name string
	Code string
}

func (widget) TableName() string { return "widgets" }

var widgetSchema = Schema{
	Entity:       "Widget",
	IDColumn:     "id",
	UniqueFields: []UniqueField{{Column: "code", Name: "code"}},
	SearchFields: []string{"name", "code"},
	DefaultSort:  "name ASC",
}

func newMockResource(t *testing.T) (*Resource[widget], sqlmock.Sqlmock) {
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
	return NewResource[widget](db, widgetSchema), mock
}

func widgetRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "code"})
	for i, n := range names {
		rows.AddRow(string(rune('a'+i)), n, "C-"+n)
	}
	return rows
}

func TestListSearchAndPagination(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE name ILIKE .+ OR code ILIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))
	mock.ExpectQuery(`SELECT .+ FROM "widgets" WHERE name ILIKE .+ OR code ILIKE .+ ORDER BY name ASC`).
		WillReturnRows(widgetRows("alpha", "alpine", "altair", "alto", "alum"))

	rows, total, err := repo.List(context.Background(), helper.Paging{Page: 2, Limit: 10}, "al")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 15 {
		t.Fatalf("total = %d, want 15", total)
	}
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListWithoutSearchSkipsFilter(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT .+ FROM "widgets" ORDER BY name ASC`).
		WillReturnRows(widgetRows("alpha", "beta"))

	_, total, err := repo.List(context.Background(), helper.Paging{Page: 1, Limit: 10}, "   ")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT .+ FROM "widgets" WHERE id = .+`).
		WillReturnRows(widgetRows())

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreatePreCheckConflict(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE code = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Create(context.Background(), &widget{Name: "alpha", Code: "C-1"},
		[]UniqueValue{{Field: UniqueField{Column: "code", Name: "code"}, Value: "C-1"}})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if conflict.Field != "code" {
		t.Fatalf("conflict field = %q, want code", conflict.Field)
	}
	if conflict.Message != "Widget with this code already exists" {
		t.Fatalf("message = %q", conflict.Message)
	}
}

// A duplicate that slips past the pre-check still surfaces as a conflict:
// the unique index is the authority.
func TestCreateTranslatesUniqueViolation(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE code = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "widgets"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_widgets_code"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &widget{Name: "alpha", Code: "C-1"},
		[]UniqueValue{{Field: UniqueField{Column: "code", Name: "code"}, Value: "C-1"}})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if conflict.Field != "code" {
		t.Fatalf("conflict field = %q, want code", conflict.Field)
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT .+ FROM "widgets" WHERE id = .+`).
		WillReturnRows(widgetRows())

	_, err := repo.Update(context.Background(), "missing", map[string]any{"name": "x"}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateConflictExcludesSelf(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT .+ FROM "widgets" WHERE id = .+`).
		WillReturnRows(widgetRows("alpha"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE code = .+ AND id <> .+`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := repo.Update(context.Background(), "a",
		map[string]any{"code": "C-taken"},
		[]UniqueValue{{Field: UniqueField{Column: "code", Name: "code"}, Value: "C-taken"}})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateAppliesAndReloads(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectQuery(`SELECT .+ FROM "widgets" WHERE id = .+`).
		WillReturnRows(widgetRows("alpha"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "widgets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .+ FROM "widgets" WHERE id = .+`).
		WillReturnRows(widgetRows("renamed"))

	got, err := repo.Update(context.Background(), "a", map[string]any{"name": "renamed"}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "renamed" {
		t.Fatalf("name = %q, want renamed", got.Name)
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newMockResource(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "widgets" WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "widgets" WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
