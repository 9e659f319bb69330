package http

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate accepts an RFC 3339 timestamp, a naive timestamp or a bare
// date. Values without a zone are read as UTC.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func parseDateParam(values map[string][]string, name string) (time.Time, error) {
	raw := values[name]
	if len(raw) == 0 || strings.TrimSpace(raw[0]) == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}

	t, err := parseDate(raw[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
