// ops.go implements the filesystem operations on Directory and File.
//
// Separated from tree.go to keep the pure value model apart from the code
// that touches the osfs boundary. Each operation is a single check-then-act
// against an external filesystem this process does not own: another process
// may create or delete the same path between any two calls, so the job here
// is to classify the observed outcome, not to prevent the race.

package tree

import (
	"errors"
	"fmt"

	"github.com/jpl-au/pathfs/internal/osfs"
)

// Exists reports whether the directory exists on fsys.
//
// A file occupying the path - or a file blocking an ancestor component - is
// not "absent", it is an error: the caller cannot create the directory there
// and needs to know why.
func (d *Directory) Exists(fsys osfs.FS) (bool, error) {
	path := d.FullPath()
	info, err := fsys.Stat(path)
	switch {
	case err == nil && info.IsDir:
		return true, nil
	case err == nil:
		return false, &OpError{Op: "exists", Path: path, Kind: KindFileExists}
	case osfs.IsNotExist(err):
		return false, nil
	case osfs.IsNotDir(err):
		return false, &OpError{Op: "exists", Path: path, Kind: KindFileExists, Err: err}
	default:
		return false, &OpError{Op: "exists", Path: path, Kind: KindIO, Err: err}
	}
}

// Mkdir creates the directory on fsys. It returns true when this call
// created it and false when it already existed - an existing directory is
// not an error.
//
// When the OS reports "already exists" the entry could be a directory
// (fine), a file (error), or gone again by the time we look. Exists
// disambiguates; its result is classified as follows:
//
//   - directory present: ok, not created
//   - file present: ErrFileExists, forwarded
//   - absent: the filesystem contradicted itself between the two calls;
//     reported as an i/o error, never silently retried
func (d *Directory) Mkdir(fsys osfs.FS) (bool, error) {
	path := d.FullPath()
	err := fsys.Mkdir(path)
	switch {
	case err == nil:
		return true, nil
	case osfs.IsExist(err):
		ok, exErr := d.Exists(fsys)
		switch {
		case exErr != nil:
			return false, exErr
		case ok:
			return false, nil
		default:
			return false, &OpError{
				Op:   "mkdir",
				Path: path,
				Kind: KindIO,
				Err:  errors.New("reported existing by mkdir but absent when re-checked"),
			}
		}
	case osfs.IsPermission(err):
		return false, &OpError{Op: "mkdir", Path: path, Kind: KindPermissionDenied, Err: err}
	case osfs.IsNotExist(err):
		return false, &OpError{Op: "mkdir", Path: path, Kind: KindParentNotFound, Err: err}
	default:
		return false, &OpError{Op: "mkdir", Path: path, Kind: KindIO, Err: err}
	}
}

// Mkdirp ensures the directory and all its ancestors exist. It returns true
// when the leaf directory itself was created by this call; whether ancestors
// were created is not surfaced. An ancestor failure propagates unchanged and
// stops the descent.
//
// Concurrent Mkdirp calls on overlapping paths are safe: a directory another
// caller won simply comes back as "already existed".
func (d *Directory) Mkdirp(fsys osfs.FS) (bool, error) {
	if d.parent != nil {
		if _, err := d.parent.Mkdirp(fsys); err != nil {
			return false, err
		}
	}

	created, err := d.Mkdir(fsys)
	if err != nil {
		var op *OpError
		if errors.As(err, &op) && op.Kind == KindParentNotFound {
			// The parent was ensured a moment ago. A missing parent now is
			// an inconsistency worth surfacing, not a state to retry.
			return false, &OpError{
				Op:   "mkdirp",
				Path: d.FullPath(),
				Kind: KindIO,
				Err:  fmt.Errorf("parent missing although just ensured: %w", op.Err),
			}
		}
		return false, err
	}
	return created, nil
}

// Read returns the file's content from fsys.
func (f *File) Read(fsys osfs.FS) (string, error) {
	path := f.FullPath()
	content, err := fsys.ReadFile(path)
	switch {
	case err == nil:
		return content, nil
	case osfs.IsNotExist(err):
		return "", &OpError{Op: "read", Path: path, Kind: KindFileNotFound, Err: err}
	case osfs.IsPermission(err):
		return "", &OpError{Op: "read", Path: path, Kind: KindPermissionDenied, Err: err}
	case osfs.IsDirectory(err):
		return "", &OpError{Op: "read", Path: path, Kind: KindIsDirectory, Err: err}
	default:
		return "", &OpError{Op: "read", Path: path, Kind: KindIO, Err: err}
	}
}

// Write stores content at the file's path on fsys, creating or truncating
// it. No retries and no partial-write recovery: a failed write leaves the
// file in whatever state the OS left it.
func (f *File) Write(fsys osfs.FS, content string) error {
	path := f.FullPath()
	err := fsys.WriteFile(path, content)
	switch {
	case err == nil:
		return nil
	case osfs.IsPermission(err):
		return &OpError{Op: "write", Path: path, Kind: KindPermissionDenied, Err: err}
	case osfs.IsDirectory(err):
		return &OpError{Op: "write", Path: path, Kind: KindIsDirectory, Err: err}
	case osfs.IsNotExist(err):
		return &OpError{Op: "write", Path: path, Kind: KindParentNotFound, Err: err}
	default:
		return &OpError{Op: "write", Path: path, Kind: KindIO, Err: err}
	}
}
