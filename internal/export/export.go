// Package export serializes advice documents and history into the
// downloadable formats: PDF, plain text and JSON. All exporters are
// stateless transformations.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xaenox/career-guide/internal/models"
)

// Text encodes an advice document as UTF-8 bytes.
func Text(content string) []byte {
	return []byte(content)
}

// JSON serializes v as indented, human-readable text. HTML escaping is
// off so non-ASCII and markup characters pass through untouched; field
// order follows struct declaration order.
func JSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FlattenHistory joins all entries into one document for bulk PDF and
// text export. Each entry renders as "{name} ({timestamp})" followed by
// its advice; entries are separated by a blank line.
func FlattenHistory(entries []models.HistoryEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, fmt.Sprintf("%s (%s)\n\n%s", e.Name, e.Timestamp, e.Advice))
	}
	return strings.Join(blocks, "\n\n")
}

// EntryFilename builds the per-entry download filename, e.g.
// "career_plan_04_Mar_2026_18:27.pdf". Spaces in the display timestamp
// become underscores.
func EntryFilename(timestamp, ext string) string {
	return "career_plan_" + strings.ReplaceAll(timestamp, " ", "_") + "." + ext
}
