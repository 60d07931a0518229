package artifact_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"

	"workoutgen/internal/artifact"
	"workoutgen/internal/logging"
	"workoutgen/internal/program"
	"workoutgen/internal/testsupport"
)

func defaultProgram(t *testing.T) program.Program {
	t.Helper()
	p, err := program.Expand(program.BuildBaseWeek(), program.DefaultWeeks)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	return p
}

func TestWriteProgramDefaultProgramProperties(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "workouts.json")

	res, err := artifact.WriteProgram(context.Background(), defaultProgram(t), dest, artifact.Options{Lock: true, Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("WriteProgram returned error: %v", err)
	}
	data := testsupport.ReadFile(t, dest)

	testsupport.AssertProgramProperties(t, data, program.DefaultWeeks)
	report := artifact.Verify(data, artifact.FormatJSON, program.DefaultWeeks)
	if !report.Passed() {
		t.Fatalf("verification failed: %+v", report.Checks)
	}
	if res.Path != dest || res.Weeks != 6 || res.Bytes != len(data) || res.Format != artifact.FormatJSON {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.SHA256) != 64 {
		t.Fatalf("unexpected digest %q", res.SHA256)
	}
	if data[len(data)-1] != '}' {
		t.Fatal("artifact should end without a trailing newline")
	}
}

func TestWriteProgramIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	resA, err := artifact.WriteProgram(context.Background(), defaultProgram(t), first, artifact.Options{})
	if err != nil {
		t.Fatal(err)
	}
	resB, err := artifact.WriteProgram(context.Background(), defaultProgram(t), second, artifact.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(testsupport.ReadFile(t, first)) != string(testsupport.ReadFile(t, second)) {
		t.Fatal("two runs produced different bytes")
	}
	if resA.SHA256 != resB.SHA256 {
		t.Fatalf("digests differ: %s vs %s", resA.SHA256, resB.SHA256)
	}
}

func TestWriteProgramOverwritesExistingFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "workouts.json")
	testsupport.WriteFile(t, dest, []byte("stale content that is much longer than nothing"))

	if _, err := artifact.WriteProgram(context.Background(), smallProgram(1), dest, artifact.Options{}); err != nil {
		t.Fatalf("WriteProgram returned error: %v", err)
	}
	decoded, err := artifact.ReadProgram(dest, "")
	if err != nil {
		t.Fatalf("ReadProgram returned error: %v", err)
	}
	if diff := cmp.Diff(smallProgram(1), decoded); diff != "" {
		t.Fatalf("unexpected program (-want +got):\n%s", diff)
	}
}

func TestWriteProgramInvalidUTF8WritesNothing(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "workouts.json")
	p := defaultProgram(t)
	p.Weeks[4] = p.Weeks[4].With(program.Friday, "broken \xc3\x28")

	_, err := artifact.WriteProgram(context.Background(), p, dest, artifact.Options{Lock: true})
	if !errors.Is(err, artifact.ErrSerialization) {
		t.Fatalf("error = %v, want ErrSerialization", err)
	}
	testsupport.AssertNotExist(t, dest)
	testsupport.AssertNotExist(t, dest+".lock")
}

func TestWriteProgramMissingDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "workouts.json")

	_, err := artifact.WriteProgram(context.Background(), defaultProgram(t), dest, artifact.Options{Lock: true})
	if !errors.Is(err, artifact.ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}
	testsupport.AssertNotExist(t, dest)
}

func TestWriteProgramEmptyProgram(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "workouts.json")
	_, err := artifact.WriteProgram(context.Background(), program.Program{}, dest, artifact.Options{})
	if !errors.Is(err, program.ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestWriteProgramWaitsForLock(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "workouts.json")
	held := flock.New(dest + ".lock")
	if err := held.Lock(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	_, err := artifact.WriteProgram(ctx, defaultProgram(t), dest, artifact.Options{Lock: true})
	if !errors.Is(err, artifact.ErrIO) {
		t.Fatalf("error = %v, want ErrIO while lock is held", err)
	}
	testsupport.AssertNotExist(t, dest)

	if err := held.Unlock(); err != nil {
		t.Fatal(err)
	}
	if _, err := artifact.WriteProgram(context.Background(), defaultProgram(t), dest, artifact.Options{Lock: true}); err != nil {
		t.Fatalf("WriteProgram after unlock returned error: %v", err)
	}
}

func TestWriteProgramYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "workouts.yaml")
	p := defaultProgram(t)

	res, err := artifact.WriteProgram(context.Background(), p, dest, artifact.Options{Format: artifact.FormatYAML})
	if err != nil {
		t.Fatalf("WriteProgram returned error: %v", err)
	}
	if res.Format != artifact.FormatYAML {
		t.Fatalf("format = %q", res.Format)
	}
	decoded, err := artifact.ReadProgram(dest, "")
	if err != nil {
		t.Fatalf("ReadProgram returned error: %v", err)
	}
	if diff := cmp.Diff(p, decoded); diff != "" {
		t.Fatalf("yaml artifact decodes to a different program (-want +got):\n%s", diff)
	}
	if report := artifact.Verify(testsupport.ReadFile(t, dest), artifact.FormatYAML, 6); !report.Passed() {
		t.Fatalf("verification failed: %+v", report.Checks)
	}
}

func TestWriteProgramFileMode(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "workouts.json")
	if _, err := artifact.WriteProgram(context.Background(), smallProgram(1), dest, artifact.Options{Mode: 0o600}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
}

func TestReadProgramMissingFile(t *testing.T) {
	if _, err := artifact.ReadProgram(filepath.Join(t.TempDir(), "none.json"), ""); !errors.Is(err, artifact.ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}
}
