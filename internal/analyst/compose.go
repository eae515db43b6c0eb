package analyst

import (
	"fmt"
	"strings"

	"github.com/amplitudeventures/vyve/internal/retrieval"
)

const systemInstructions = `You are an AI assistant that answers analysis prompts using retrieved company document passages.

Accuracy: base your response strictly on the retrieved passages provided below. Do not generate or infer information that is not explicitly present in the retrieved content.

Completeness: consider every retrieved passage before formulating a response.

Formatting: structure your response exactly as the prompt requests.

If the retrieved passages are insufficient to answer the prompt, state clearly that the necessary information is not available rather than making assumptions or fabrications.`

const degradedNotice = `No document passages could be retrieved for this prompt. State explicitly which parts of the answer lack supporting document evidence; do not invent facts to fill the gaps.`

// Compose builds the full agent prompt from the sub-phase prompt and the
// retrieved passages. A nil or empty passage list produces the degraded
// variant that instructs the model to flag missing evidence.
func Compose(prompt string, passages []retrieval.Passage) string {
	var sb strings.Builder
	sb.WriteString(systemInstructions)
	sb.WriteString("\n\n")

	if len(passages) == 0 {
		sb.WriteString(degradedNotice)
	} else {
		sb.WriteString("Retrieved passages:\n")
		for i, p := range passages {
			fmt.Fprintf(&sb, "\n[%d] (score %.4f", i+1, p.Score)
			if name, ok := p.Metadata["filename"].(string); ok && name != "" {
				fmt.Fprintf(&sb, ", %s", name)
			}
			sb.WriteString(")\n")
			sb.WriteString(p.Text)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\nPrompt:\n")
	sb.WriteString(prompt)

	return sb.String()
}
