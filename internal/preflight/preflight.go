package preflight

import (
	"path/filepath"

	"workoutgen/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// LockPath returns the advisory lock file guarding an output path.
func LockPath(outputPath string) string {
	return outputPath + ".lock"
}

// RunAll executes the filesystem checks a generate run depends on.
// The lock check is skipped when locking is disabled or the output
// directory is already unusable.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	outDir := CheckDirectoryAccess("Output directory", filepath.Dir(cfg.Output.Path))
	results := []Result{outDir}

	if cfg.Program.ContentPath != "" {
		results = append(results, CheckFileReadable("Content catalog", cfg.Program.ContentPath))
	}

	if cfg.Output.Lock && outDir.Passed {
		results = append(results, CheckLockAvailable("Output lock", LockPath(cfg.Output.Path)))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
