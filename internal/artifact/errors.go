package artifact

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures to create, lock, or replace the destination file.
	ErrIO = errors.New("artifact i/o error")
	// ErrSerialization marks programs that cannot be encoded and artifacts
	// that cannot be decoded.
	ErrSerialization = errors.New("artifact serialization error")
)

func wrap(marker error, operation, path string, err error) error {
	detail := operation
	if path != "" {
		detail = operation + " " + path
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
