// Package osfs is the boundary between the path model and the operating
// system. The tree package performs all outcome classification; this package
// only executes raw filesystem calls and returns the OS's own errors, so the
// error classes the classifier depends on (fs.ErrNotExist, fs.ErrExist,
// fs.ErrPermission, syscall.ENOTDIR, syscall.EISDIR) arrive unmodified.
//
// Two implementations exist: Real, backed by package os, and MemFS, an
// in-memory filesystem for tests that fabricates the same error classes.
package osfs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// Info is the subset of a stat result the path model needs.
type Info struct {
	IsDir bool
}

// FS is the abstract filesystem consumed by the tree package. Paths are
// POSIX absolute paths. Implementations return raw OS-class errors; they do
// not interpret outcomes.
type FS interface {
	// Stat reports what, if anything, exists at path.
	Stat(path string) (Info, error)
	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(path string) error
	// ReadFile returns the content of the file at path.
	ReadFile(path string) (string, error)
	// WriteFile creates or truncates the file at path with content.
	WriteFile(path, content string) error
}

// Options configures the permission bits a Real filesystem applies.
type Options struct {
	DirMode  fs.FileMode // mode for created directories (default 0755)
	FileMode fs.FileMode // mode for created files (default 0644)
}

// Real returns an FS backed by the operating system with default modes.
func Real() FS {
	return New(Options{})
}

// New returns an FS backed by the operating system using the given options.
func New(opts Options) FS {
	if opts.DirMode == 0 {
		opts.DirMode = 0755
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	return &realFS{opts: opts}
}

type realFS struct {
	opts Options
}

func (r *realFS) Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	return Info{IsDir: fi.IsDir()}, nil
}

func (r *realFS) Mkdir(path string) error {
	return os.Mkdir(path, r.opts.DirMode)
}

func (r *realFS) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *realFS) WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), r.opts.FileMode)
}

// Error-class predicates. The tree package branches on these rather than on
// errors.Is directly so the class set lives in one place.

// IsNotExist reports whether err means the path (or a parent) is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsExist reports whether err means the path already exists.
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}

// IsPermission reports whether err means the OS denied access.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsNotDir reports whether err means a non-directory sits where a directory
// component of the path was expected (ENOTDIR).
func IsNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

// IsDirectory reports whether err means the path is a directory where a file
// was expected (EISDIR).
func IsDirectory(err error) bool {
	return errors.Is(err, syscall.EISDIR)
}
