package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// WriteMonthsDocument writes the month-grouped document month by month so a
// large dataset never needs a second full copy in memory. If the streaming
// write fails it falls back to a one-shot indented write before giving up.
func WriteMonthsDocument(path string, doc *MonthsDocument, logger zerolog.Logger) error {
	if err := writeStreaming(path, doc); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("streaming write failed, retrying one-shot")
		return writeOneShot(path, doc)
	}
	return nil
}

func writeStreaming(path string, doc *MonthsDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	statsJSON, err := json.MarshalIndent(doc.Stats, "  ", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	fmt.Fprintf(w, "{\n  \"lastUpdated\": %s,\n", quoteJSON(doc.LastUpdated))
	fmt.Fprintf(w, "  \"stats\": %s,\n", statsJSON)
	w.WriteString("  \"months\": {")

	for i, g := range doc.Months {
		confJSON, err := json.MarshalIndent(g.Conferences, "    ", "  ")
		if err != nil {
			return fmt.Errorf("encoding month %s: %w", g.Key, err)
		}
		if i > 0 {
			w.WriteByte(',')
		}
		fmt.Fprintf(w, "\n    %s: %s", quoteJSON(g.Key), confJSON)
	}

	w.WriteString("\n  }\n}\n")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

func writeOneShot(path string, doc *MonthsDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// quoteJSON renders a string as a JSON string literal.
func quoteJSON(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
