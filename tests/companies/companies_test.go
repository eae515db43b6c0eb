package companies_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/amplitudeventures/vyve/internal/companies"
	"github.com/amplitudeventures/vyve/pkg/query"
)

func ptr[T any](v T) *T { return &v }

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", companies.ErrNotFound, http.StatusNotFound},
		{"duplicate", companies.ErrDuplicate, http.StatusConflict},
		{"invalid", companies.ErrInvalid, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", companies.ErrNotFound), http.StatusNotFound},
		{"wrapped duplicate", fmt.Errorf("insert failed: %w", companies.ErrDuplicate), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := companies.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"name":   {"acme"},
			"sector": {"mining"},
		}

		f := companies.FiltersFromQuery(values)

		if f.Name == nil || *f.Name != "acme" {
			t.Errorf("Name = %v, want acme", f.Name)
		}
		if f.Sector == nil || *f.Sector != "mining" {
			t.Errorf("Sector = %v, want mining", f.Sector)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := companies.FiltersFromQuery(url.Values{})

		if f.Name != nil {
			t.Errorf("Name = %v, want nil", f.Name)
		}
		if f.Sector != nil {
			t.Errorf("Sector = %v, want nil", f.Sector)
		}
	})
}

func TestFiltersApply(t *testing.T) {
	projection := query.
		NewProjectionMap("public", "companies", "c").
		Project("name", "Name").
		Project("sector", "Sector")

	t.Run("no filters produces no WHERE clause", func(t *testing.T) {
		b := query.NewBuilder(projection)
		f := companies.Filters{}
		f.Apply(b)
		sql, args := b.Build()

		wantSQL := "SELECT c.name, c.sector FROM public.companies c"
		if sql != wantSQL {
			t.Errorf("sql = %q, want %q", sql, wantSQL)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("name contains filter", func(t *testing.T) {
		b := query.NewBuilder(projection)
		f := companies.Filters{Name: ptr("acme")}
		f.Apply(b)
		_, args := b.Build()

		if len(args) != 1 || args[0] != "%acme%" {
			t.Errorf("args = %v, want [%%acme%%]", args)
		}
	})

	t.Run("sector equals filter", func(t *testing.T) {
		b := query.NewBuilder(projection)
		f := companies.Filters{Sector: ptr("mining")}
		f.Apply(b)
		_, args := b.Build()

		if len(args) != 1 {
			t.Fatalf("args length = %d, want 1", len(args))
		}
		if v, ok := args[0].(*string); !ok || *v != "mining" {
			t.Errorf("args[0] = %v, want *mining", args[0])
		}
	})

	t.Run("multiple filters combine with AND", func(t *testing.T) {
		b := query.NewBuilder(projection)
		f := companies.Filters{Name: ptr("acme"), Sector: ptr("mining")}
		f.Apply(b)
		_, args := b.Build()

		if len(args) != 2 {
			t.Errorf("args length = %d, want 2", len(args))
		}
	})
}
