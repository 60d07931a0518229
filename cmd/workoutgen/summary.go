package main

import (
	"fmt"
	"io"
	"strings"

	"workoutgen/internal/program"
)

// writeSummary prints the fixed post-run report: week count, then one label
// per day of the base week.
func writeSummary(w io.Writer, p program.Program, base program.WeekPlan) error {
	var b strings.Builder
	b.WriteString("Workouts generated successfully!\n")
	b.WriteString("Structure:\n")
	fmt.Fprintf(&b, "- %d weeks\n", p.WeekCount())
	for _, d := range program.Days() {
		fmt.Fprintf(&b, "- %s: %s\n", d, program.Label(d, base.Entry(d)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderWeekTable(base program.WeekPlan) string {
	rows := make([][]string, 0, program.DaysPerWeek)
	for _, d := range program.Days() {
		entry := base.Entry(d)
		kind := "Training"
		if entry.IsRest() {
			kind = "Rest"
		}
		rows = append(rows, []string{d.Key(), d.String(), program.Label(d, entry), kind})
	}
	return renderTable(
		[]string{"Day", "Name", "Session", "Type"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}
