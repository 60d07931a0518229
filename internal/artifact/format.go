package artifact

import (
	"fmt"
	"path/filepath"
	"strings"

	"workoutgen/internal/program"
)

// Format selects the artifact encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported artifact format %q", value)
	}
}

// FormatForPath infers the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode renders p in the given format.
func Encode(p program.Program, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return EncodeJSON(p)
	case FormatYAML:
		return EncodeYAML(p)
	default:
		return nil, wrap(ErrSerialization, "encode", "", fmt.Errorf("unsupported format %q", format))
	}
}

// Decode parses artifact bytes in the given format.
func Decode(data []byte, format Format) (program.Program, error) {
	switch format {
	case FormatJSON, "":
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return program.Program{}, wrap(ErrSerialization, "decode", "", fmt.Errorf("unsupported format %q", format))
	}
}

// assemble turns decoded weeks keyed by ordinal into a Program, rejecting
// gaps in the week sequence.
func assemble(weeks map[int]program.WeekPlan) (program.Program, error) {
	if len(weeks) == 0 {
		return program.Program{}, fmt.Errorf("artifact holds no weeks")
	}
	out := program.Program{Weeks: make([]program.WeekPlan, len(weeks))}
	for n := 1; n <= len(weeks); n++ {
		week, ok := weeks[n]
		if !ok {
			return program.Program{}, fmt.Errorf("week %d missing: week keys must run 1..%d", n, len(weeks))
		}
		out.Weeks[n-1] = week
	}
	return out, nil
}

// dayTracker records which day keys of a week have been seen.
type dayTracker struct {
	week int
	seen [program.DaysPerWeek]bool
}

func (t *dayTracker) add(key string) (program.Day, error) {
	day, err := program.ParseDay(key)
	if err != nil {
		return 0, fmt.Errorf("week %d: %w", t.week, err)
	}
	if t.seen[day-1] {
		return 0, fmt.Errorf("week %d: duplicate day %q", t.week, key)
	}
	t.seen[day-1] = true
	return day, nil
}

func (t *dayTracker) complete() error {
	for i, ok := range t.seen {
		if !ok {
			return fmt.Errorf("week %d: day %d missing", t.week, i+1)
		}
	}
	return nil
}
