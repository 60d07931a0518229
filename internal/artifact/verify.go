package artifact

import (
	"bytes"
	"fmt"
	"strings"

	"workoutgen/internal/program"
)

// Check is one named verification outcome.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Report collects the checks run against an artifact.
type Report struct {
	Weeks  int
	Checks []Check
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return len(r.Checks) > 0
}

// Verify inspects artifact bytes: structure, replication of week 1, byte-exact
// re-encoding, and the rest/training day layout of the base schedule. When
// expectedWeeks is positive the week count must match it.
func Verify(data []byte, format Format, expectedWeeks int) Report {
	p, err := Decode(data, format)
	if err != nil {
		checks := []Check{{Name: "Structure", Detail: err.Error()}}
		for _, name := range []string{"Replication", "Round trip", "Rest days", "Training days"} {
			checks = append(checks, Check{Name: name, Detail: "skipped: artifact did not decode"})
		}
		return Report{Checks: checks}
	}

	return Report{
		Weeks: p.WeekCount(),
		Checks: []Check{
			checkStructure(p, expectedWeeks),
			checkReplication(p),
			checkRoundTrip(p, data, format),
			checkDays("Rest days", p, program.RestDays(), program.DayEntry.IsRest, program.RestDayMarker),
			checkDays("Training days", p, program.TrainingDays(), program.DayEntry.HasStrengthTable, program.StrengthTableMarker),
		},
	}
}

func checkStructure(p program.Program, expectedWeeks int) Check {
	detail := fmt.Sprintf("%d weeks x %d days = %d entries", p.WeekCount(), program.DaysPerWeek, p.EntryCount())
	if expectedWeeks > 0 && p.WeekCount() != expectedWeeks {
		return Check{Name: "Structure", Detail: fmt.Sprintf("%s (expected %d weeks)", detail, expectedWeeks)}
	}
	return Check{Name: "Structure", Passed: true, Detail: detail}
}

func checkReplication(p program.Program) Check {
	first := p.Weeks[0]
	var mismatched []string
	for i, week := range p.Weeks[1:] {
		if week != first {
			mismatched = append(mismatched, program.WeekKey(i+2))
		}
	}
	if len(mismatched) > 0 {
		return Check{Name: "Replication", Detail: "weeks differ from week 1: " + strings.Join(mismatched, ", ")}
	}
	return Check{Name: "Replication", Passed: true, Detail: "all weeks match week 1"}
}

func checkRoundTrip(p program.Program, data []byte, format Format) Check {
	again, err := Encode(p, format)
	if err != nil {
		return Check{Name: "Round trip", Detail: err.Error()}
	}
	if !bytes.Equal(again, data) {
		return Check{Name: "Round trip", Detail: "re-encoding changes the bytes (key order, indentation or escaping differs)"}
	}
	return Check{Name: "Round trip", Passed: true, Detail: fmt.Sprintf("%d bytes reproduced", len(data))}
}

func checkDays(name string, p program.Program, days []program.Day, pred func(program.DayEntry) bool, marker string) Check {
	var missing []string
	for i, week := range p.Weeks {
		for _, d := range days {
			if !pred(week.Entry(d)) {
				missing = append(missing, fmt.Sprintf("week %d %s", i+1, d))
			}
		}
	}
	if len(missing) > 0 {
		return Check{Name: name, Detail: fmt.Sprintf("%q missing: %s", marker, strings.Join(missing, ", "))}
	}
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, d.Key())
	}
	return Check{Name: name, Passed: true, Detail: fmt.Sprintf("%q on days %s", marker, strings.Join(keys, ", "))}
}
