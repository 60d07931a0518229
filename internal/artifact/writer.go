package artifact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"workoutgen/internal/fileutil"
	"workoutgen/internal/logging"
	"workoutgen/internal/preflight"
	"workoutgen/internal/program"
)

const defaultFileMode os.FileMode = 0o644

const lockRetryDelay = 100 * time.Millisecond

// Options tunes WriteProgram. The zero value writes JSON without locking.
type Options struct {
	Format Format
	// Lock serializes concurrent writers through "<dest>.lock".
	Lock   bool
	Mode   os.FileMode
	Logger *slog.Logger
}

// Result describes a completed write.
type Result struct {
	Path   string
	Format Format
	Bytes  int
	SHA256 string
	Weeks  int
}

// WriteProgram serializes p to dest, replacing any existing file. The write
// is all-or-nothing: an encoding failure leaves dest untouched, and the new
// bytes only become visible through an atomic rename.
func WriteProgram(ctx context.Context, p program.Program, dest string, opts Options) (Result, error) {
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "artifact"))
	format := opts.Format
	if format == "" {
		format = FormatJSON
	}
	mode := opts.Mode
	if mode == 0 {
		mode = defaultFileMode
	}

	if err := p.Validate(); err != nil {
		var textErr *program.InvalidTextError
		if errors.As(err, &textErr) {
			return Result{}, wrap(ErrSerialization, "validate program", "", err)
		}
		return Result{}, err
	}
	data, err := Encode(p, format)
	if err != nil {
		return Result{}, err
	}

	dir := filepath.Dir(dest)
	if check := preflight.CheckDirectoryAccess("Output directory", dir); !check.Passed {
		return Result{}, wrap(ErrIO, "write", dest, errors.New(check.Detail))
	}

	if opts.Lock {
		unlock, err := acquireLock(ctx, dest)
		if err != nil {
			logging.WarnWithContext(logger, "output lock unavailable", "output_lock",
				logging.String(logging.FieldPath, dest),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "wait for the other generator to finish or disable output.lock"),
				logging.String(logging.FieldImpact, "program not written"),
			)
			return Result{}, err
		}
		defer unlock()
	}

	if err := ctx.Err(); err != nil {
		return Result{}, wrap(ErrIO, "write", dest, err)
	}
	if err := fileutil.WriteFileAtomic(dest, data, mode); err != nil {
		return Result{}, wrap(ErrIO, "write", dest, err)
	}

	res := Result{
		Path:   dest,
		Format: format,
		Bytes:  len(data),
		SHA256: fileutil.SHA256Hex(data),
		Weeks:  p.WeekCount(),
	}
	logger.Info("program written",
		logging.String(logging.FieldEventType, "artifact_written"),
		logging.String(logging.FieldPath, res.Path),
		logging.String(logging.FieldFormat, string(res.Format)),
		logging.Int(logging.FieldWeeks, res.Weeks),
		logging.Int("bytes", res.Bytes),
		logging.String("sha256", res.SHA256),
	)
	return res, nil
}

func acquireLock(ctx context.Context, dest string) (func(), error) {
	lockPath := preflight.LockPath(dest)
	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, wrap(ErrIO, "lock", lockPath, err)
	}
	if !locked {
		return nil, wrap(ErrIO, "lock", lockPath, fmt.Errorf("lock held by another process"))
	}
	return func() { _ = lock.Unlock() }, nil
}

// ReadProgram loads and decodes an artifact. An empty format is inferred
// from the file extension.
func ReadProgram(path string, format Format) (program.Program, error) {
	if format == "" {
		format = FormatForPath(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return program.Program{}, wrap(ErrIO, "read", path, err)
	}
	return Decode(data, format)
}
