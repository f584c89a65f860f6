package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Identifiable is implemented by every per-id collection record.
type Identifiable interface {
	EntityID() string
}

// NewID returns a millisecond-timestamp id. IDs are never checked for
// collision; two creates within the same millisecond can collide, which
// matches the admin UI's expectations of this system.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NowISO returns the current UTC time in the timestamp format the data
// files use.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// Today returns the current UTC date string used to key daily counters.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func indexOf[T Identifiable](items []T, id string) int {
	for i, item := range items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

func removeByID[T Identifiable](items []T, id string) ([]T, bool) {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	return filtered, len(filtered) != len(items)
}

// mergeRecord overlays the top-level keys of patch onto existing.
// Nested objects in patch replace the stored ones wholesale; siblings
// not named in patch are untouched. The JSON round-trip keeps the
// merge contract identical for every record type.
func mergeRecord[T any](existing T, patch map[string]interface{}) (T, error) {
	var zero T

	raw, err := json.Marshal(existing)
	if err != nil {
		return zero, fmt.Errorf("marshal existing record: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return zero, fmt.Errorf("decode existing record: %w", err)
	}

	for k, v := range patch {
		m[k] = v
	}

	merged, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("marshal merged record: %w", err)
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("decode merged record: %w", err)
	}
	return out, nil
}
