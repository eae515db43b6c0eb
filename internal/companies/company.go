// Package companies implements the company domain for Vyve.
// Companies scope documents: uploaded material belongs to a company and
// the analysis pipeline runs against that company's corpus.
package companies

import (
	"time"

	"github.com/google/uuid"
)

// Company represents an organization whose documents are under analysis.
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Sector      *string   `json:"sector"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new company.
type CreateCommand struct {
	Name        string  `json:"name"`
	Sector      *string `json:"sector"`
	Description *string `json:"description"`
}

// UpdateCommand carries mutable company fields. Nil pointers leave the
// corresponding column untouched.
type UpdateCommand struct {
	Name        *string `json:"name"`
	Sector      *string `json:"sector"`
	Description *string `json:"description"`
}
