// Package analyst implements the analysis agent: given a prompt it
// retrieves supporting passages from the document store, grounds a chat
// completion in the retrieved content, and returns the final text answer.
package analyst

import "context"

// Analyst turns a prompt into a final text answer. Implementations may
// consult retrieval zero or more times per call but must base the answer
// only on retrieved content plus the prompt, never invented facts.
type Analyst interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}
