package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes the document as indented JSON. Findings without a line
// number serialize the line field as null, never as a sentinel value.
func WriteJSON(doc Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	return nil
}

// Marshal returns the document as indented JSON, for stdout output.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
