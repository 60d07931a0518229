package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"workoutgen/internal/artifact"
)

type verifyCheckJSON struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

type verifyReportJSON struct {
	Path   string            `json:"path"`
	Format string            `json:"format"`
	Weeks  int               `json:"weeks"`
	Passed bool              `json:"passed"`
	Checks []verifyCheckJSON `json:"checks"`
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var weeksFlag int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Check a generated program file",
		Long: "Check a generated program file: structure, replication of week 1, " +
			"byte-exact re-encoding, and the rest/training day layout.\n\n" +
			"Without a path the configured output file is checked against the configured week count.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Output.Path
			expectedWeeks := cfg.Program.Weeks
			format := artifact.Format(cfg.Output.Format)
			if len(args) == 1 {
				path = args[0]
				expectedWeeks = 0
				format = artifact.FormatForPath(path)
			}
			if cmd.Flags().Changed("weeks") {
				expectedWeeks = weeksFlag
			}
			if strings.TrimSpace(formatFlag) != "" {
				if format, err = artifact.ParseFormat(formatFlag); err != nil {
					return err
				}
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: read %s: %w", artifact.ErrIO, path, err)
			}
			report := artifact.Verify(data, format, expectedWeeks)

			if jsonOutput {
				if err := writeJSON(cmd, toVerifyJSON(path, format, report)); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Artifact: %s (%s)\n", path, format)
				fmt.Fprintln(out, renderVerifyTable(report, shouldColorize(out)))
			}

			if !report.Passed() {
				return fmt.Errorf("verification failed: %d of %d checks failed", failedChecks(report), len(report.Checks))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Artifact format: json or yaml (default: from extension)")
	cmd.Flags().IntVarP(&weeksFlag, "weeks", "w", 0, "Expected week count (0 accepts any)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderVerifyTable(report artifact.Report, colorize bool) string {
	rows := make([][]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		o := outcomePass
		if !c.Passed {
			o = outcomeFail
		}
		rows = append(rows, []string{c.Name, o.render(colorize), c.Detail})
	}
	return renderTable([]string{"Check", "Result", "Detail"}, rows, nil)
}

func failedChecks(report artifact.Report) int {
	n := 0
	for _, c := range report.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

func toVerifyJSON(path string, format artifact.Format, report artifact.Report) verifyReportJSON {
	checks := make([]verifyCheckJSON, 0, len(report.Checks))
	for _, c := range report.Checks {
		checks = append(checks, verifyCheckJSON(c))
	}
	return verifyReportJSON{
		Path:   path,
		Format: string(format),
		Weeks:  report.Weeks,
		Passed: report.Passed(),
		Checks: checks,
	}
}
