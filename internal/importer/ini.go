package importer

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// iniSection is one [name] or [name:label] block with its keys in file order.
type iniSection struct {
	name   string
	label  string
	keys   []string
	values map[string]string
}

func (s *iniSection) get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *iniSection) set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// parseINI reads a PrusaSlicer-style ini file. Section headers may carry a
// preset label after a colon, as config bundles do ("[print:0.20mm QUALITY]").
func parseINI(data []byte) ([]*iniSection, error) {
	var sections []*iniSection
	var current *iniSection

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated section header", lineNo)
			}
			header := strings.TrimSpace(line[1 : len(line)-1])
			name, label := header, ""
			if idx := strings.Index(header, ":"); idx >= 0 {
				name = strings.TrimSpace(header[:idx])
				label = strings.TrimSpace(header[idx+1:])
			}
			current = &iniSection{name: strings.ToLower(name), label: label, values: map[string]string{}}
			sections = append(sections, current)
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: key outside of any section", lineNo)
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		current.set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ini: %w", err)
	}
	return sections, nil
}
