package retrieval

import "strings"

// Chunking bounds for passage indexing. Overlap carries trailing context
// from one chunk into the next so sentence fragments remain searchable.
const (
	ChunkSize    = 3000
	ChunkOverlap = 50
)

// Chunk splits text into passages of at most ChunkSize runes with
// ChunkOverlap runes of trailing context repeated at each boundary.
// Whitespace-only input yields no chunks.
func Chunk(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= ChunkSize {
		return []string{text}
	}

	var chunks []string
	step := ChunkSize - ChunkOverlap

	for start := 0; start < len(runes); start += step {
		end := min(start+ChunkSize, len(runes))
		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}

	return chunks
}
