package compare

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"op3d/internal/profile"
)

// Status classifies one compared key.
type Status string

const (
	StatusOnlyInFirst  Status = "only_in_profile1"
	StatusOnlyInSecond Status = "only_in_profile2"
	StatusDifferent    Status = "different"
)

// Difference is one setting that differs between the compared profiles.
type Difference struct {
	Key    string `json:"key"`
	First  any    `json:"profile1"`
	Second any    `json:"profile2"`
	Status Status `json:"status"`
}

// Common is one setting shared with an equal value.
type Common struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Stats summarizes a comparison.
type Stats struct {
	TotalKeys    int `json:"total_keys"`
	Differences  int `json:"differences"`
	Common       int `json:"common"`
	OnlyInFirst  int `json:"only_in_profile1"`
	OnlyInSecond int `json:"only_in_profile2"`
	Modified     int `json:"modified"`
}

// Result is the full outcome of comparing two documents.
type Result struct {
	FirstSchema  string       `json:"profile1_schema"`
	SecondSchema string       `json:"profile2_schema"`
	FirstID      string       `json:"profile1_id"`
	SecondID     string       `json:"profile2_id"`
	Differences  []Difference `json:"differences"`
	Common       []Common     `json:"common,omitempty"`
	Stats        Stats        `json:"stats"`
}

// Documents compares two profiles key by key. Keys are reported in sorted
// order. When includeCommon is set, equal settings are listed too.
func Documents(first, second *profile.Document, includeCommon bool) (*Result, error) {
	flatFirst, err := flatten(first)
	if err != nil {
		return nil, fmt.Errorf("flatten %s: %w", first.ID(), err)
	}
	flatSecond, err := flatten(second)
	if err != nil {
		return nil, fmt.Errorf("flatten %s: %w", second.ID(), err)
	}

	keySet := make(map[string]struct{}, len(flatFirst)+len(flatSecond))
	for key := range flatFirst {
		keySet[key] = struct{}{}
	}
	for key := range flatSecond {
		keySet[key] = struct{}{}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &Result{
		FirstSchema:  string(first.Kind),
		SecondSchema: string(second.Kind),
		FirstID:      first.ID(),
		SecondID:     second.ID(),
	}
	for _, key := range keys {
		v1, in1 := flatFirst[key]
		v2, in2 := flatSecond[key]
		switch {
		case !in1:
			result.Differences = append(result.Differences, Difference{Key: key, Second: v2, Status: StatusOnlyInSecond})
		case !in2:
			result.Differences = append(result.Differences, Difference{Key: key, First: v1, Status: StatusOnlyInFirst})
		case !reflect.DeepEqual(v1, v2):
			result.Differences = append(result.Differences, Difference{Key: key, First: v1, Second: v2, Status: StatusDifferent})
		default:
			if includeCommon {
				result.Common = append(result.Common, Common{Key: key, Value: v1})
			}
		}
	}

	result.Stats = Stats{
		TotalKeys:   len(keys),
		Differences: len(result.Differences),
	}
	for _, diff := range result.Differences {
		switch diff.Status {
		case StatusOnlyInFirst:
			result.Stats.OnlyInFirst++
		case StatusOnlyInSecond:
			result.Stats.OnlyInSecond++
		case StatusDifferent:
			result.Stats.Modified++
		}
	}
	result.Stats.Common = len(keys) - len(result.Differences)
	return result, nil
}

// flatten round-trips the document through JSON and collapses nested objects
// to dot-notation keys. Arrays index into the path ("extruders.0.max_temp").
func flatten(doc *profile.Document) (map[string]any, error) {
	data, err := json.Marshal(doc.Value())
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	flat := make(map[string]any)
	flattenInto(flat, "", raw)
	return flat, nil
}

func flattenInto(dst map[string]any, prefix string, value any) {
	switch typed := value.(type) {
	case map[string]any:
		for key, nested := range typed {
			flattenInto(dst, joinKey(prefix, key), nested)
		}
	case []any:
		for i, nested := range typed {
			flattenInto(dst, joinKey(prefix, strconv.Itoa(i)), nested)
		}
	default:
		dst[prefix] = value
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
