package program

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DaysPerWeek is the number of day entries every WeekPlan carries.
	DaysPerWeek = 7
	// DefaultWeeks is the program length used when nothing else is configured.
	DefaultWeeks = 6

	// RestDayMarker opens every rest-day entry.
	RestDayMarker = "REST DAY"
	// StrengthTableMarker appears in the first strength table of every training session.
	StrengthTableMarker = "Working Set 1"

	restLabel   = "REST"
	focusPrefix = "A) Focus:"
)

// ErrInvalidArgument marks caller mistakes such as a non-positive week count
// or a malformed content catalog.
var ErrInvalidArgument = errors.New("invalid argument")

// Day is a calendar day within a program week, 1 (Monday) through 7 (Sunday).
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Days lists every day of a week in identifier order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// RestDays lists the days the base week schedules for recovery.
func RestDays() []Day {
	return []Day{Wednesday, Saturday, Sunday}
}

// TrainingDays lists the days the base week schedules a strength session.
func TrainingDays() []Day {
	return []Day{Monday, Tuesday, Thursday, Friday}
}

// ParseDay converts a canonical day key ("1".."7") into a Day.
func ParseDay(key string) (Day, error) {
	n, err := parseOrdinal(key)
	if err != nil {
		return 0, fmt.Errorf("%w: day key %q: %v", ErrInvalidArgument, key, err)
	}
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: day key %q outside 1..%d", ErrInvalidArgument, key, DaysPerWeek)
	}
	return d, nil
}

// Valid reports whether d is within 1..7.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Key returns the identifier used in serialized artifacts.
func (d Day) Key() string {
	return strconv.Itoa(int(d))
}

// Weekday maps the day onto time.Weekday.
func (d Day) Weekday() time.Weekday {
	return time.Weekday(int(d) % DaysPerWeek)
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return d.Weekday().String()
}

// DayEntry is the free-form text describing one day's training or rest guidance.
type DayEntry string

// IsRest reports whether the entry is rest-day guidance.
func (e DayEntry) IsRest() bool {
	return strings.HasPrefix(strings.TrimSpace(string(e)), RestDayMarker)
}

// HasStrengthTable reports whether the entry contains a working-set table.
func (e DayEntry) HasStrengthTable() bool {
	return strings.Contains(string(e), StrengthTableMarker)
}

// Focus returns the session focus from the "A) Focus:" heading, or "" when
// the entry has none.
func (e DayEntry) Focus() string {
	first, _, _ := strings.Cut(strings.TrimSpace(string(e)), "\n")
	if !strings.HasPrefix(first, focusPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(first, focusPrefix))
}

// WeekPlan holds exactly one entry per day; index i is day i+1.
type WeekPlan [DaysPerWeek]DayEntry

// Entry returns the text scheduled for d. It panics on an invalid day.
func (w WeekPlan) Entry(d Day) DayEntry {
	return w[d-1]
}

// With returns a copy of w with d replaced by entry.
func (w WeekPlan) With(d Day, entry DayEntry) WeekPlan {
	w[d-1] = entry
	return w
}

// Label is the short schedule description for d: the base-week label when
// the entry is unchanged, "REST" for rest days, otherwise the session focus.
func Label(d Day, entry DayEntry) string {
	if !d.Valid() {
		return ""
	}
	if entry == BuildBaseWeek().Entry(d) {
		return baseLabel(d)
	}
	if entry.IsRest() {
		return restLabel
	}
	if focus := entry.Focus(); focus != "" {
		return focus
	}
	return "Training"
}

// Program is the full calendar; Weeks[i] is week i+1.
type Program struct {
	Weeks []WeekPlan
}

// WeekCount returns the number of weeks in the program.
func (p Program) WeekCount() int {
	return len(p.Weeks)
}

// EntryCount returns the number of day entries across all weeks.
func (p Program) EntryCount() int {
	return len(p.Weeks) * DaysPerWeek
}

// Week returns week n (1-based).
func (p Program) Week(n int) (WeekPlan, bool) {
	if n < 1 || n > len(p.Weeks) {
		return WeekPlan{}, false
	}
	return p.Weeks[n-1], true
}

// WeekKey returns the serialized identifier of week n.
func WeekKey(n int) string {
	return strconv.Itoa(n)
}

// ParseWeekKey converts a canonical week key into its ordinal.
func ParseWeekKey(key string) (int, error) {
	n, err := parseOrdinal(key)
	if err != nil {
		return 0, fmt.Errorf("%w: week key %q: %v", ErrInvalidArgument, key, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: week key %q must be at least 1", ErrInvalidArgument, key)
	}
	return n, nil
}

// Validate checks the structural invariants: at least one week and valid
// UTF-8 in every entry.
func (p Program) Validate() error {
	if len(p.Weeks) == 0 {
		return fmt.Errorf("%w: program has no weeks", ErrInvalidArgument)
	}
	for i, week := range p.Weeks {
		for _, d := range Days() {
			if !utf8.ValidString(string(week.Entry(d))) {
				return &InvalidTextError{Week: i + 1, Day: d}
			}
		}
	}
	return nil
}

// InvalidTextError reports an entry that is not valid UTF-8.
type InvalidTextError struct {
	Week int
	Day  Day
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("week %d %s: entry is not valid UTF-8", e.Week, e.Day)
}

// Expand replicates base across weeks 1..weekCount. Every week is an exact
// copy; no per-week progression is applied.
func Expand(base WeekPlan, weekCount int) (Program, error) {
	if weekCount < 1 {
		return Program{}, fmt.Errorf("%w: week count must be at least 1, got %d", ErrInvalidArgument, weekCount)
	}
	weeks := make([]WeekPlan, weekCount)
	for i := range weeks {
		weeks[i] = base
	}
	return Program{Weeks: weeks}, nil
}

// parseOrdinal accepts only canonical base-10 integers ("7", not "07" or "+7").
func parseOrdinal(key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if strconv.Itoa(n) != key {
		return 0, errors.New("not in canonical form")
	}
	return n, nil
}
