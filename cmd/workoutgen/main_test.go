package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"workoutgen/internal/artifact"
	"workoutgen/internal/program"
	"workoutgen/internal/testsupport"
)

const defaultSummary = `Workouts generated successfully!
Structure:
- 6 weeks
- Monday: Chest & Triceps
- Tuesday: Back & Biceps
- Wednesday: REST
- Thursday: Legs
- Friday: Shoulders & Arms
- Saturday: REST
- Sunday: REST
`

func TestRootWithoutArgsGeneratesDefaultProgram(t *testing.T) {
	workDir := setupWorkDir(t)

	stdout, stderr, err := runCLI(t)
	require.NoError(t, err, "stderr: %s", stderr)
	require.Equal(t, defaultSummary, stdout)
	require.Contains(t, stderr, "program written")

	data, err := os.ReadFile(filepath.Join(workDir, "workouts.json"))
	require.NoError(t, err)
	testsupport.AssertProgramProperties(t, data, 6)

	report := artifact.Verify(data, artifact.FormatJSON, 6)
	require.True(t, report.Passed(), "checks: %+v", report.Checks)

	lock := filepath.Join(workDir, "workouts.json.lock")
	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	for _, e := range entries {
		name := filepath.Join(workDir, e.Name())
		require.Contains(t, []string{filepath.Join(workDir, "workouts.json"), lock}, name, "unexpected file left behind")
	}
}

func TestGenerateTwiceProducesIdenticalBytes(t *testing.T) {
	workDir := setupWorkDir(t)
	path := filepath.Join(workDir, "workouts.json")

	_, _, err := runCLI(t, "generate")
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, _, err = runCLI(t)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerateFlagsOverrideDefaults(t *testing.T) {
	workDir := setupWorkDir(t)

	stdout, _, err := runCLI(t, "generate", "-o", "plans/plan.yaml", "--format", "yaml", "-w", "3")
	require.Error(t, err, "plans/ does not exist yet")
	require.True(t, errors.Is(err, artifact.ErrIO), "error = %v", err)
	require.Empty(t, stdout)

	require.NoError(t, os.Mkdir(filepath.Join(workDir, "plans"), 0o755))
	stdout, _, err = runCLI(t, "generate", "-o", "plans/plan.yaml", "--format", "yaml", "-w", "3")
	require.NoError(t, err)
	require.Contains(t, stdout, "- 3 weeks\n")

	prog, err := artifact.ReadProgram(filepath.Join(workDir, "plans", "plan.yaml"), "")
	require.NoError(t, err)
	require.Equal(t, 3, prog.WeekCount())
	week, ok := prog.Week(3)
	require.True(t, ok)
	require.Equal(t, program.BuildBaseWeek(), week)
}

func TestGenerateRejectsNonPositiveWeeks(t *testing.T) {
	workDir := setupWorkDir(t)

	_, _, err := runCLI(t, "--weeks", "0")
	require.Error(t, err)
	require.True(t, errors.Is(err, program.ErrInvalidArgument), "error = %v", err)
	testsupport.AssertNotExist(t, filepath.Join(workDir, "workouts.json"))
}

func TestGenerateWithContentCatalogAndTable(t *testing.T) {
	workDir := setupWorkDir(t)
	content := filepath.Join(workDir, "content.yaml")
	writeTestFile(t, content, "\"1\": |\n  A) Focus: Mobility Flow\n\n  Working Set 1: hips\n")

	stdout, _, err := runCLI(t, "--content", content, "--table")
	require.NoError(t, err)
	require.Contains(t, stdout, "- Monday: Mobility Flow\n")
	require.Contains(t, stdout, "- Tuesday: Back & Biceps\n")
	require.Contains(t, stdout, "Mobility Flow")
	require.Contains(t, stdout, "SESSION")

	prog, err := artifact.ReadProgram(filepath.Join(workDir, "workouts.json"), "")
	require.NoError(t, err)
	for n := 1; n <= prog.WeekCount(); n++ {
		week, _ := prog.Week(n)
		require.Equal(t, program.DayEntry("A) Focus: Mobility Flow\n\nWorking Set 1: hips"), week.Entry(program.Monday))
	}
}

func TestGenerateBadContentCatalog(t *testing.T) {
	workDir := setupWorkDir(t)
	content := filepath.Join(workDir, "content.yaml")
	writeTestFile(t, content, "\"9\": nope\n")

	_, _, err := runCLI(t, "--content", content)
	require.Error(t, err)
	require.True(t, errors.Is(err, program.ErrInvalidArgument), "error = %v", err)
	testsupport.AssertNotExist(t, filepath.Join(workDir, "workouts.json"))
}

func TestGenerateWatchRequiresContent(t *testing.T) {
	setupWorkDir(t)
	_, _, err := runCLI(t, "--watch")
	require.ErrorContains(t, err, "--watch needs a content file")
}

func TestGenerateUsesConfigFile(t *testing.T) {
	workDir := setupWorkDir(t)
	configPath := filepath.Join(workDir, "custom.toml")
	writeTestFile(t, configPath, "[output]\npath = \"out.json\"\nlock = false\n\n[program]\nweeks = 2\n\n[logging]\nformat = \"json\"\n")

	stdout, stderr, err := runCLI(t, "--config", configPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "- 2 weeks\n")
	require.Contains(t, stderr, `"msg":"program written"`)

	data, err := os.ReadFile(filepath.Join(workDir, "out.json"))
	require.NoError(t, err)
	testsupport.AssertProgramProperties(t, data, 2)
	testsupport.AssertNotExist(t, filepath.Join(workDir, "out.json.lock"))
}

func TestInvalidConfigFails(t *testing.T) {
	workDir := setupWorkDir(t)
	configPath := filepath.Join(workDir, "bad.toml")
	writeTestFile(t, configPath, "[program]\nweeks = 0\n")

	_, _, err := runCLI(t, "-c", configPath)
	require.ErrorContains(t, err, "program.weeks")
}

func TestUnknownArgumentFails(t *testing.T) {
	setupWorkDir(t)
	_, _, err := runCLI(t, "bogus")
	require.Error(t, err)
}

func TestGenerateLogsRunIDOnce(t *testing.T) {
	setupWorkDir(t)

	_, stderr, err := runCLI(t)
	require.NoError(t, err)

	var written string
	for _, line := range strings.Split(stderr, "\n") {
		if strings.Contains(line, "program written") {
			written = line
		}
	}
	require.NotEmpty(t, written, "stderr: %s", stderr)
	require.Equal(t, 1, strings.Count(written, "run_id="), written)
	require.Contains(t, written, "artifact: program written")
}
