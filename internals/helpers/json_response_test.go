package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

func resolveFor(t *testing.T, query string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	fctx := &fasthttp.RequestCtx{}
	fctx.Request.SetRequestURI("/things?" + query)
	c := app.AcquireCtx(fctx)
	defer app.ReleaseCtx(c)
	return ResolvePaging(c, defaultPerPage, maxPerPage)
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Paging
	}{
		{"defaults", "", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit page", "page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "limit=5", Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"per_page wins over limit", "per_page=7&limit=50", Paging{Page: 1, PerPage: 7, Offset: 0, Limit: 7}},
		{"capped at max", "per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"zero page clamps to one", "page=0", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"negative per_page falls back", "per_page=-3", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"garbage falls back", "page=abc&per_page=xyz", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveFor(t, tt.query, 20, 100)
			if got != tt.want {
				t.Errorf("ResolvePaging(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		p     Paging
		want  Pagination
	}{
		{
			"first of many",
			45, Paging{Page: 1, PerPage: 20},
			Pagination{Page: 1, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			"middle page",
			45, Paging{Page: 2, PerPage: 20},
			Pagination{Page: 2, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			"last page",
			45, Paging{Page: 3, PerPage: 20},
			Pagination{Page: 3, PerPage: 20, Total: 45, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			"empty result still one page",
			0, Paging{Page: 1, PerPage: 20},
			Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPagination(tt.total, tt.p)
			if got != tt.want {
				t.Errorf("BuildPagination(%d, %+v) = %+v, want %+v", tt.total, tt.p, got, tt.want)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{fiber.StatusBadRequest, "BAD_REQUEST"},
		{fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{fiber.StatusForbidden, "FORBIDDEN"},
		{fiber.StatusNotFound, "NOT_FOUND"},
		{fiber.StatusConflict, "CONFLICT"},
		{fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		if got := statusToErrorCode(tt.status); got != tt.want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
