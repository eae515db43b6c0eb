// Package documents implements the document domain for Vyve.
// It provides types, data access, and business logic for document
// upload, company-scoped registration, blob storage integration, and
// passage indexing for retrieval.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded company document with its metadata and
// blob storage reference.
type Document struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Document statuses. A document is uploaded on registration and indexed
// once its text content has been chunked into the passage store.
const (
	StatusUploaded = "uploaded"
	StatusIndexed  = "indexed"
)

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes. PageCount is optional and may
// be extracted by the caller via pdfcpu; nil values are stored as NULL.
type CreateCommand struct {
	Data        []byte
	CompanyID   uuid.UUID
	Filename    string
	ContentType string
	PageCount   *int
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success, Document is populated and Error is empty.
// On failure, Error describes the problem and Document is nil.
type BatchResult struct {
	Document *Document `json:"document,omitempty"`
	Filename string    `json:"filename"`
	Error    string    `json:"error,omitempty"`
}
