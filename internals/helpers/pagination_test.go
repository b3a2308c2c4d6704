package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, query string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/items"+query, nil)
	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("request: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Paging
	}{
		{"defaults", "", Paging{Page: 1, Limit: 10}},
		{"explicit", "?page=3&limit=25", Paging{Page: 3, Limit: 25}},
		{"zero page falls back", "?page=0", Paging{Page: 1, Limit: 10}},
		{"negative limit falls back", "?limit=-5", Paging{Page: 1, Limit: 10}},
		{"garbage falls back", "?page=abc&limit=xyz", Paging{Page: 1, Limit: 10}},
		{"limit capped", "?limit=5000", Paging{Page: 1, Limit: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveFor(t, tc.query); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPagingOffset(t *testing.T) {
	if off := (Paging{Page: 1, Limit: 10}).Offset(); off != 0 {
		t.Fatalf("offset = %d, want 0", off)
	}
	if off := (Paging{Page: 3, Limit: 25}).Offset(); off != 50 {
		t.Fatalf("offset = %d, want 50", off)
	}
}

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		total int64
		p     Paging
		pages int
	}{
		{0, Paging{Page: 1, Limit: 10}, 0},
		{1, Paging{Page: 1, Limit: 10}, 1},
		{10, Paging{Page: 1, Limit: 10}, 1},
		{11, Paging{Page: 2, Limit: 10}, 2},
		{15, Paging{Page: 2, Limit: 10}, 2},
		{100, Paging{Page: 4, Limit: 25}, 4},
	}
	for _, tc := range cases {
		got := BuildPagination(tc.total, tc.p)
		if got.Pages != tc.pages || got.Current != tc.p.Page || got.Total != tc.total {
			t.Fatalf("BuildPagination(%d, %+v) = %+v, want pages %d", tc.total, tc.p, got, tc.pages)
		}
	}
}
