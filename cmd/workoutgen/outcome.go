package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"workoutgen/internal/preflight"
)

// outcome is a result marker shared by verify and config validate output.
type outcome struct {
	label  string
	colors text.Colors
}

var (
	outcomePass = outcome{label: "PASS", colors: text.Colors{text.FgGreen}}
	outcomeFail = outcome{label: "FAIL", colors: text.Colors{text.FgRed}}
	outcomeOK   = outcome{label: "OK", colors: text.Colors{text.FgGreen}}
	outcomeWarn = outcome{label: "WARN", colors: text.Colors{text.FgYellow}}
)

func (o outcome) render(colorize bool) string {
	if colorize {
		return o.colors.Sprint(o.label)
	}
	return o.label
}

const preflightLabelWidth = 20

// preflightLine formats r as "  Output directory:    [OK] /path".
func preflightLine(r preflight.Result, colorize bool) string {
	o := outcomeOK
	if !r.Passed {
		o = outcomeWarn
	}
	line := fmt.Sprintf("  %-*s [%s]", preflightLabelWidth, r.Name+":", o.render(colorize))
	if r.Detail != "" {
		line += " " + r.Detail
	}
	return line
}

// shouldColorize reports whether writer is a terminal and NO_COLOR is unset.
func shouldColorize(writer io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
