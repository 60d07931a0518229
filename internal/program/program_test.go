package program

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBuildBaseWeekSchedule(t *testing.T) {
	week := BuildBaseWeek()

	for _, d := range RestDays() {
		entry := week.Entry(d)
		if !entry.IsRest() {
			t.Fatalf("%s: expected rest day, got %q", d, firstLine(entry))
		}
		if !strings.Contains(string(entry), RestDayMarker) {
			t.Fatalf("%s: missing rest marker", d)
		}
	}
	for _, d := range TrainingDays() {
		entry := week.Entry(d)
		if entry.IsRest() {
			t.Fatalf("%s: expected training day", d)
		}
		if !entry.HasStrengthTable() {
			t.Fatalf("%s: missing %q", d, StrengthTableMarker)
		}
		if entry.Focus() == "" {
			t.Fatalf("%s: missing focus heading", d)
		}
	}
}

func TestBuildBaseWeekDeterministic(t *testing.T) {
	if diff := cmp.Diff(BuildBaseWeek(), BuildBaseWeek()); diff != "" {
		t.Fatalf("base week differs between calls (-first +second):\n%s", diff)
	}
}

func TestExpandReplicatesBaseWeek(t *testing.T) {
	base := BuildBaseWeek()
	prog, err := Expand(base, DefaultWeeks)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if prog.WeekCount() != DefaultWeeks {
		t.Fatalf("week count = %d, want %d", prog.WeekCount(), DefaultWeeks)
	}
	if prog.EntryCount() != 42 {
		t.Fatalf("entry count = %d, want 42", prog.EntryCount())
	}
	for n := 1; n <= DefaultWeeks; n++ {
		week, ok := prog.Week(n)
		if !ok {
			t.Fatalf("week %d missing", n)
		}
		if diff := cmp.Diff(base, week); diff != "" {
			t.Fatalf("week %d differs from base (-base +week):\n%s", n, diff)
		}
	}
	if _, ok := prog.Week(0); ok {
		t.Fatal("week 0 should not exist")
	}
	if _, ok := prog.Week(DefaultWeeks + 1); ok {
		t.Fatal("week past the end should not exist")
	}
}

func TestExpandWeeksAreIndependentCopies(t *testing.T) {
	prog, err := Expand(BuildBaseWeek(), 2)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	prog.Weeks[0][0] = "changed"
	if prog.Weeks[1][0] == "changed" {
		t.Fatal("weeks share storage")
	}
}

func TestExpandRejectsNonPositiveWeekCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Expand(BuildBaseWeek(), n)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Expand(%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestDayIdentifiers(t *testing.T) {
	days := Days()
	if len(days) != DaysPerWeek {
		t.Fatalf("Days() len = %d", len(days))
	}
	for i, d := range days {
		if d.Key() != WeekKey(i+1) {
			t.Fatalf("day %d key = %q", i+1, d.Key())
		}
	}
	if Monday.Weekday() != time.Monday || Sunday.Weekday() != time.Sunday {
		t.Fatalf("weekday mapping wrong: %v %v", Monday.Weekday(), Sunday.Weekday())
	}
	if Wednesday.String() != "Wednesday" {
		t.Fatalf("Wednesday.String() = %q", Wednesday.String())
	}
	if Day(9).String() != "Day(9)" {
		t.Fatalf("invalid day string = %q", Day(9).String())
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("5")
	if err != nil || d != Friday {
		t.Fatalf("ParseDay(5) = %v, %v", d, err)
	}
	for _, key := range []string{"0", "8", "05", "x", ""} {
		if _, err := ParseDay(key); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ParseDay(%q) error = %v, want ErrInvalidArgument", key, err)
		}
	}
}

func TestParseWeekKey(t *testing.T) {
	n, err := ParseWeekKey("12")
	if err != nil || n != 12 {
		t.Fatalf("ParseWeekKey(12) = %d, %v", n, err)
	}
	for _, key := range []string{"0", "-1", "01", "one"} {
		if _, err := ParseWeekKey(key); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ParseWeekKey(%q) error = %v, want ErrInvalidArgument", key, err)
		}
	}
}

func TestLabel(t *testing.T) {
	week := BuildBaseWeek()
	want := map[Day]string{
		Monday:    "Chest & Triceps",
		Tuesday:   "Back & Biceps",
		Wednesday: "REST",
		Thursday:  "Legs",
		Friday:    "Shoulders & Arms",
		Saturday:  "REST",
		Sunday:    "REST",
	}
	for d, label := range want {
		if got := Label(d, week.Entry(d)); got != label {
			t.Fatalf("Label(%s) = %q, want %q", d, got, label)
		}
	}
	if got := Label(Monday, "A) Focus: Mobility Flow\n\nstuff"); got != "Mobility Flow" {
		t.Fatalf("custom label = %q", got)
	}
	if got := Label(Monday, "REST DAY\n\nsleep"); got != "REST" {
		t.Fatalf("custom rest label = %q", got)
	}
	if got := Label(Monday, "free text"); got != "Training" {
		t.Fatalf("fallback label = %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := (Program{}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty program error = %v", err)
	}
	prog, _ := Expand(BuildBaseWeek(), 3)
	if err := prog.Validate(); err != nil {
		t.Fatalf("valid program error = %v", err)
	}
	prog.Weeks[2] = prog.Weeks[2].With(Thursday, DayEntry("bad \xff text"))
	err := prog.Validate()
	var textErr *InvalidTextError
	if !errors.As(err, &textErr) {
		t.Fatalf("expected InvalidTextError, got %v", err)
	}
	if textErr.Week != 3 || textErr.Day != Thursday {
		t.Fatalf("unexpected location: week %d day %s", textErr.Week, textErr.Day)
	}
}

func firstLine(e DayEntry) string {
	line, _, _ := strings.Cut(string(e), "\n")
	return line
}
