package program

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Catalog holds per-day text overrides loaded from a YAML file of the form
//
//	"1": |
//	  A) Focus: ...
//	"3": |
//	  REST DAY ...
//
// Days not present in the file keep the base-week text.
type Catalog struct {
	path      string
	overrides map[Day]DayEntry
}

// LoadCatalog reads and validates a content override file. Override text is
// normalized to Unicode NFC so visually identical input always serializes to
// the same bytes.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content catalog: %w", err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("content catalog %s: %w", path, err)
	}
	catalog.path = path
	return catalog, nil
}

// ParseCatalog decodes catalog YAML from memory.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidArgument, err)
	}
	overrides := make(map[Day]DayEntry, len(raw))
	for key, text := range raw {
		d, err := ParseDay(key)
		if err != nil {
			return nil, err
		}
		text = strings.TrimRight(text, "\n")
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: day %s has empty text", ErrInvalidArgument, d.Key())
		}
		overrides[d] = DayEntry(norm.NFC.String(text))
	}
	return &Catalog{overrides: overrides}, nil
}

// Path returns the file the catalog was loaded from, if any.
func (c *Catalog) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Days returns the overridden days in identifier order.
func (c *Catalog) Days() []Day {
	if c == nil {
		return nil
	}
	days := make([]Day, 0, len(c.overrides))
	for d := range c.overrides {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Apply returns base with the catalog's overrides substituted. A nil catalog
// returns base unchanged.
func (c *Catalog) Apply(base WeekPlan) WeekPlan {
	if c == nil {
		return base
	}
	for _, d := range c.Days() {
		base = base.With(d, c.overrides[d])
	}
	return base
}
