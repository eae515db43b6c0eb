package companies

import (
	"net/url"

	"github.com/amplitudeventures/vyve/pkg/query"
	"github.com/amplitudeventures/vyve/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "companies", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("sector", "Sector").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for company queries.
// Nil fields are ignored. Sector uses exact matching; Name uses
// case-insensitive contains matching.
type Filters struct {
	Name   *string `json:"name,omitempty"`
	Sector *string `json:"sector,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Sector", f.Sector)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if s := values.Get("sector"); s != "" {
		f.Sector = &s
	}

	return f
}

func scanCompany(s repository.Scanner) (Company, error) {
	var c Company
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Sector,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
