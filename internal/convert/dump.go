package convert

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"op3d/internal/profile"
)

// dumpJSON renders the neutral profile without field renaming. The dump
// round-trips: decoding it yields a structurally equal document.
func dumpJSON(doc *profile.Document) (string, error) {
	data, err := json.MarshalIndent(doc.Value(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	return string(data) + "\n", nil
}

// dumpYAML renders the neutral profile as YAML with the same field names as
// the JSON dump.
func dumpYAML(doc *profile.Document) (string, error) {
	data, err := yaml.Marshal(doc.Value())
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	return string(data), nil
}
