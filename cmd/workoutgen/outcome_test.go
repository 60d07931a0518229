package main

import (
	"io"
	"strings"
	"testing"

	"workoutgen/internal/preflight"
	"workoutgen/internal/program"
)

func TestPreflightLine(t *testing.T) {
	got := preflightLine(preflight.Result{Name: "Output directory", Detail: "missing"}, false)
	want := "  Output directory:    [WARN] missing"
	if got != want {
		t.Fatalf("preflightLine mismatch\n got: %q\nwant: %q", got, want)
	}

	got = preflightLine(preflight.Result{Name: "Output lock", Passed: true}, false)
	if got != "  Output lock:         [OK]" {
		t.Fatalf("unexpected passing line: %q", got)
	}
}

func TestOutcomeRender(t *testing.T) {
	plain := outcomeFail.render(false)
	if plain != "FAIL" {
		t.Fatalf("plain render = %q", plain)
	}
	if got, want := outcomeFail.render(true), outcomeFail.colors.Sprint("FAIL"); got != want {
		t.Fatalf("colored render = %q, want %q", got, want)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTablePadsRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "x", "dropped"}}, []columnAlignment{alignRight})
	if out == "" {
		t.Fatal("expected table output")
	}
	if strings.Contains(out, "dropped") {
		t.Fatalf("extra cell rendered: %s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestRenderWeekTable(t *testing.T) {
	out := renderWeekTable(program.BuildBaseWeek())
	for _, want := range []string{"Monday", "Chest & Triceps", "Sunday", "Rest", "Training"} {
		if !strings.Contains(out, want) {
			t.Fatalf("week table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	base := program.BuildBaseWeek()
	prog, err := program.Expand(base, 6)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := writeSummary(&b, prog, base); err != nil {
		t.Fatal(err)
	}
	if b.String() != defaultSummary {
		t.Fatalf("summary mismatch:\n%s", b.String())
	}
}
