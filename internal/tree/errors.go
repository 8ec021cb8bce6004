// errors.go defines the closed error sets for path building and filesystem
// operations.
//
// Separated from tree.go and ops.go to centralise the variant definitions.
// Simple variants are sentinel errors checked with errors.Is; variants that
// carry data (*BuildError, *OpError) implement Is against their sentinel so
// callers branch the same way for both.
//
// Design: the kind sets are closed. Renderers switch over every kind and
// panic on an unknown one - an unhandled kind is a programmer error in this
// package, not a runtime condition for callers to recover from.

package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/pathfs/internal/validate"
)

// Build failures.
var (
	// ErrNotAbsolute reports a path that does not start with "/".
	ErrNotAbsolute = errors.New("not an absolute path")
	// ErrTrailingSlash reports a non-root path ending in "/".
	ErrTrailingSlash = errors.New("invalid trailing slash")
	// ErrInvalidSegment is the sentinel matched by *BuildError.
	ErrInvalidSegment = errors.New("invalid path segment")
)

// SegmentError records every validation finding for one path segment.
type SegmentError struct {
	Segment  string
	Findings []validate.Finding
}

// BuildError aggregates all invalid segments encountered while parsing a
// path, in encounter order.
type BuildError struct {
	Path     string
	Segments []SegmentError
}

// Error renders one line per invalid segment. Display only.
func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid path %q:", e.Path)
	for _, s := range e.Segments {
		msgs := make([]string, len(s.Findings))
		for i, f := range s.Findings {
			msgs[i] = f.Message()
		}
		fmt.Fprintf(&b, "\n  segment %q: %s", s.Segment, strings.Join(msgs, "; "))
	}
	return b.String()
}

// Is matches *BuildError against ErrInvalidSegment.
func (e *BuildError) Is(target error) bool {
	return target == ErrInvalidSegment
}

// OpKind classifies a filesystem operation failure. The set is closed.
type OpKind int

const (
	// KindFileExists: a file occupies the path (or blocks an ancestor).
	KindFileExists OpKind = iota + 1
	// KindPermissionDenied: the OS refused access.
	KindPermissionDenied
	// KindParentNotFound: the parent directory does not exist.
	KindParentNotFound
	// KindFileNotFound: the file does not exist.
	KindFileNotFound
	// KindIsDirectory: a directory occupies the path of a file operation.
	KindIsDirectory
	// KindIO: any other failure, including observed inconsistencies.
	KindIO
)

// Operation failure sentinels, one per OpKind, matched via errors.Is.
var (
	ErrFileExists       = errors.New("file exists")
	ErrPermissionDenied = errors.New("permission denied")
	ErrParentNotFound   = errors.New("parent directory not found")
	ErrFileNotFound     = errors.New("file not found")
	ErrIsDirectory      = errors.New("is a directory")
	ErrIO               = errors.New("i/o error")
)

// sentinel returns the sentinel error for a kind.
func (k OpKind) sentinel() error {
	switch k {
	case KindFileExists:
		return ErrFileExists
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindParentNotFound:
		return ErrParentNotFound
	case KindFileNotFound:
		return ErrFileNotFound
	case KindIsDirectory:
		return ErrIsDirectory
	case KindIO:
		return ErrIO
	default:
		panic(fmt.Sprintf("tree: unhandled op kind %d", int(k)))
	}
}

// String returns the stable identifier for a kind, used in JSON output.
func (k OpKind) String() string {
	switch k {
	case KindFileExists:
		return "file_exists"
	case KindPermissionDenied:
		return "permission_denied"
	case KindParentNotFound:
		return "parent_not_found"
	case KindFileNotFound:
		return "file_not_found"
	case KindIsDirectory:
		return "is_directory"
	case KindIO:
		return "io_error"
	default:
		panic(fmt.Sprintf("tree: unhandled op kind %d", int(k)))
	}
}

// OpError is a classified filesystem operation failure. Err holds the
// underlying OS error when one exists; for observed inconsistencies (see
// Mkdir's race handling) it holds a description instead.
type OpError struct {
	Op   string // "exists", "mkdir", "mkdirp", "read", "write"
	Path string
	Kind OpKind
	Err  error
}

// Error renders the failure for humans. Callers branch on Kind or with
// errors.Is against the sentinels, never on this string.
func (e *OpError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind.sentinel())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying OS error to errors.Is/As chains.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Is matches *OpError against its kind's sentinel.
func (e *OpError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
