package api

import (
	"net/http"

	"github.com/amplitudeventures/vyve/internal/config"
	"github.com/amplitudeventures/vyve/pkg/openapi"
	"github.com/amplitudeventures/vyve/pkg/routes"
)

const maxStorageListSize = 500

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	storage := newStorageHandler(
		runtime.Storage,
		runtime.Logger,
		maxStorageListSize,
	)

	routes.Register(
		mux,
		domain.Companies.Handler().Routes(),
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Phases.Handler().Routes(),
		domain.Analysis.Handler().Routes(),
		storage.routes(),
	)

	specBytes, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return err
	}

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))
	return nil
}
