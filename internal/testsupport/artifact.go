package testsupport

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
)

// ParseArtifact decodes a JSON artifact with encoding/json, independently of
// the package under test, into week key -> day key -> text.
func ParseArtifact(t testing.TB, data []byte) map[string]map[string]string {
	t.Helper()

	var doc map[string]map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("artifact is not a JSON object of string objects: %v", err)
	}
	return doc
}

// AssertProgramProperties checks a JSON artifact for the expected shape:
// weeks x 7 string entries, every week identical to week 1, rest markers on
// days 3, 6 and 7 and strength tables on days 1, 2, 4 and 5.
func AssertProgramProperties(t testing.TB, data []byte, weeks int) {
	t.Helper()

	doc := ParseArtifact(t, data)
	if len(doc) != weeks {
		t.Fatalf("artifact holds %d weeks, want %d", len(doc), weeks)
	}
	total := 0
	for w := 1; w <= weeks; w++ {
		week, ok := doc[strconv.Itoa(w)]
		if !ok {
			t.Fatalf("week %d missing", w)
		}
		if len(week) != 7 {
			t.Fatalf("week %d holds %d days", w, len(week))
		}
		total += len(week)
	}
	if total != weeks*7 {
		t.Fatalf("artifact holds %d entries, want %d", total, weeks*7)
	}

	first := doc["1"]
	for w := 2; w <= weeks; w++ {
		for d := 1; d <= 7; d++ {
			key := strconv.Itoa(d)
			if doc[strconv.Itoa(w)][key] != first[key] {
				t.Fatalf("week %d day %d differs from week 1", w, d)
			}
		}
	}

	for _, d := range []string{"3", "6", "7"} {
		if !strings.Contains(first[d], "REST DAY") {
			t.Fatalf("day %s missing REST DAY", d)
		}
	}
	for _, d := range []string{"1", "2", "4", "5"} {
		if !strings.Contains(first[d], "Working Set 1") {
			t.Fatalf("day %s missing Working Set 1", d)
		}
	}
}
