package phases

import (
	"github.com/amplitudeventures/vyve/pkg/query"
	"github.com/amplitudeventures/vyve/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "phases", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("ordinal", "Ordinal").
	Project("status", "Status")

var defaultSort = query.SortField{Field: "Ordinal"}

var subPhaseProjection = query.
	NewProjectionMap("public", "sub_phases", "s").
	Project("id", "ID").
	Project("phase_id", "PhaseID").
	Project("name", "Name").
	Project("prompt", "Prompt").
	Project("takes_summaries", "TakesSummaries").
	Project("position", "Position")

func scanPhase(s repository.Scanner) (Phase, error) {
	var p Phase
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Ordinal,
		&p.Status,
	)
	return p, err
}

func scanSubPhase(s repository.Scanner) (SubPhase, error) {
	var sp SubPhase
	err := s.Scan(
		&sp.ID,
		&sp.PhaseID,
		&sp.Name,
		&sp.Prompt,
		&sp.TakesSummaries,
		&sp.Position,
	)
	return sp, err
}
