package api

import (
	"github.com/amplitudeventures/vyve/internal/analysis"
	"github.com/amplitudeventures/vyve/internal/analyst"
	"github.com/amplitudeventures/vyve/internal/companies"
	"github.com/amplitudeventures/vyve/internal/documents"
	"github.com/amplitudeventures/vyve/internal/phases"
	"github.com/amplitudeventures/vyve/internal/results"
	"github.com/amplitudeventures/vyve/internal/retrieval"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Companies companies.System
	Documents documents.System
	Phases    phases.System
	Results   results.System
	Analysis  analysis.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	retrievalSystem := retrieval.New(db, runtime.Logger)

	companiesSystem := companies.New(db, runtime.Logger, runtime.Pagination)

	docsSystem := documents.New(
		db,
		runtime.Storage,
		retrievalSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	phasesSystem := phases.New(db, runtime.Logger)
	resultsSystem := results.New(db, runtime.Logger)

	an := analyst.New(
		runtime.Agent,
		retrievalSystem,
		analyst.Options{
			TopK:        runtime.Analysis.TopK,
			MaxAttempts: runtime.Analysis.MaxAttempts,
			Backoff:     runtime.Analysis.RetryBackoffDuration(),
		},
		runtime.Logger,
	)

	analysisSystem := analysis.New(
		an,
		phasesSystem,
		resultsSystem,
		runtime.Logger,
	)

	return &Domain{
		Companies: companiesSystem,
		Documents: docsSystem,
		Phases:    phasesSystem,
		Results:   resultsSystem,
		Analysis:  analysisSystem,
	}
}
