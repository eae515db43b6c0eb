package api

import (
	"net/http"

	"github.com/amplitudeventures/vyve/internal/config"
	"github.com/amplitudeventures/vyve/pkg/openapi"
)

// buildSpec assembles the OpenAPI document for the API module. The spec is
// serialized once at startup and served as static bytes.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Company": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"sector":      {Type: "string"},
				"description": {Type: "string"},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"company_id":   {Type: "string", Format: "uuid"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string"},
				"size_bytes":   {Type: "integer"},
				"page_count":   {Type: "integer"},
				"storage_key":  {Type: "string"},
				"status":       {Type: "string", Enum: []any{"uploaded", "indexed"}},
				"uploaded_at":  {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"Phase": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"ordinal":     {Type: "integer"},
				"status": {
					Type: "string",
					Enum: []any{"idle", "in_progress", "completed", "incomplete"},
				},
			},
		},
		"StartCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"force": {
					Type:        "boolean",
					Description: "Rerun sub-phases that already hold a completed result",
					Default:     false,
				},
			},
		},
		"RunSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"started_at":  {Type: "string", Format: "date-time"},
				"finished_at": {Type: "string", Format: "date-time"},
				"cancelled":   {Type: "boolean"},
				"phases":      {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
		"PhaseStatus": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"phase_id":         {Type: "string", Format: "uuid"},
				"name":             {Type: "string"},
				"ordinal":          {Type: "integer"},
				"status":           {Type: "string"},
				"overall_progress": {Type: "number"},
				"sub_phases":       {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
	})

	spec.Paths["/companies"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List companies",
			Tags:    []string{"companies"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated companies", "Company"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create a company",
			Tags:        []string{"companies"},
			RequestBody: openapi.RequestBodyJSON("Company", true),
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Created company", "Company"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
				http.StatusConflict:   openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/companies/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a company",
			Tags:       []string{"companies"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Company ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Company", "Company"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:     "Update a company",
			Tags:        []string{"companies"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Company ID")},
			RequestBody: openapi.RequestBodyJSON("Company", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Updated company", "Company"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a company and its documents",
			Tags:       []string{"companies"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Company ID")},
			Responses: map[int]*openapi.Response{
				http.StatusNoContent: {Description: "Deleted"},
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/documents"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List documents",
			Tags:    []string{"documents"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("company_id", "string", "Filter by owning company", false),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated documents", "Document"),
			},
		},
		Post: &openapi.Operation{
			Summary: "Upload a document",
			Tags:    []string{"documents"},
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Registered document", "Document"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/documents/batch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Upload multiple documents",
			Description: "Multipart upload of several files under one company; per-file outcomes are reported individually.",
			Tags:        []string{"documents"},
			Responses: map[int]*openapi.Response{
				http.StatusOK:         openapi.ResponseJSON("Batch results", "Document"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/phases"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List the phase catalog",
			Tags:    []string{"phases"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Phases in ordinal order", "Phase"),
			},
		},
	}

	spec.Paths["/analysis/start"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Start an analysis run",
			Description: "Runs every phase in ordinal order and blocks until the run finishes or is cancelled.",
			Tags:        []string{"analysis"},
			RequestBody: openapi.RequestBodyJSON("StartCommand", false),
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Run summary", "RunSummary"),
				http.StatusConflict: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/analysis/stop"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Stop the active analysis run",
			Description: "Cooperative: takes effect at the next sub-phase boundary. Idempotent.",
			Tags:        []string{"analysis"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: {Description: "Stop requested"},
			},
		},
	}

	spec.Paths["/analysis/reset"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Reset analysis state",
			Description: "Returns every phase to idle and deletes all analysis results.",
			Tags:        []string{"analysis"},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       {Description: "Reset complete"},
				http.StatusConflict: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/analysis/status/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Phase execution status",
			Tags:       []string{"analysis"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Phase ID")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Per-sub-phase status projection", "PhaseStatus"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/analysis/phases"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Progress overview for every phase",
			Tags:    []string{"analysis"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Phase overviews", "PhaseStatus"),
			},
		},
	}

	return spec
}
