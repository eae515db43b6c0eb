package workflow

import (
	"strings"

	"github.com/amplitudeventures/vyve/internal/results"
)

const contextHeader = "Previously completed analysis results:"

var contextSeparator = strings.Repeat("-", 40)

// BuildContext augments a dependent sub-phase's prompt with every prior
// completed result, in phase-ordinal then catalog-position order. The
// header is emitted even when no results have completed yet, so the agent
// always sees the results section, empty or not.
func BuildContext(prompt string, completed []results.CompletedResult) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n\n")
	sb.WriteString(contextHeader)

	for _, c := range completed {
		sb.WriteString("\n\n")
		sb.WriteString(contextSeparator)
		sb.WriteString("\n")
		sb.WriteString(c.SubPhaseName)
		sb.WriteString(": ")
		sb.WriteString(c.Result)
	}

	return sb.String()
}
