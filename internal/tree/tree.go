// Package tree models POSIX absolute paths as immutable Directory and File
// values with parent linkage.
//
// A Directory or File never changes after construction and factories
// validate every name before wrapping it, so holding one is proof the whole
// path is well-formed. Children reference already-built parents; parents
// never learn about children. That makes the structure a tree by
// construction (no cycle is expressible) and makes every value safe to share
// across goroutines without locks.
//
// Filesystem access goes through the osfs.FS boundary passed into each
// operation. Construction itself does no I/O.
package tree

import (
	"fmt"
	"strings"

	"github.com/jpl-au/pathfs/internal/validate"
)

// Directory is one component of an absolute path. The zero value is not
// usable; obtain directories from Root, Build or Dir.
type Directory struct {
	name   string
	parent *Directory
}

// File is a leaf under a Directory. Files are never the root and never have
// children. Obtain files from Directory.File.
type File struct {
	name   string
	parent *Directory
}

// Root returns the Directory for "/". Its name is empty and it has no
// parent.
func Root() *Directory {
	return &Directory{}
}

// Build parses an absolute path into a Directory chain.
//
// "/" yields the root. Any other path must not end in "/" and is split into
// segments, each validated with the validate package. Validation does not
// stop at the first bad segment: every invalid segment is collected into a
// single *BuildError so the caller sees the whole damage at once. A path
// with any invalid segment yields no tree at all.
func Build(path string) (*Directory, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsolute, path)
	}
	if path == "/" {
		return Root(), nil
	}
	if strings.HasSuffix(path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrTrailingSlash, path)
	}

	dir := Root()
	var bad []SegmentError
	for _, seg := range strings.Split(path[1:], "/") {
		if findings := validate.Name(seg); len(findings) > 0 {
			bad = append(bad, SegmentError{Segment: seg, Findings: findings})
			continue
		}
		// Once a segment has failed there is no chain to extend; keep
		// validating the rest but discard the valid ones.
		if len(bad) == 0 {
			dir = &Directory{name: seg, parent: dir}
		}
	}
	if len(bad) > 0 {
		return nil, &BuildError{Path: path, Segments: bad}
	}
	return dir, nil
}

// BuildFile parses an absolute path whose last segment names a file. The
// leading segments build the parent Directory; the last is validated as the
// file's name. "/" has no file segment and fails with an empty-name finding.
func BuildFile(path string) (*File, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsolute, path)
	}
	idx := strings.LastIndex(path, "/")
	parentPath := path[:idx]
	if parentPath == "" {
		parentPath = "/"
	}
	parent, err := Build(parentPath)
	if err != nil {
		return nil, err
	}
	return parent.File(path[idx+1:])
}

// Name returns the directory's own path segment. Empty only for the root.
func (d *Directory) Name() string {
	return d.name
}

// Parent returns the parent directory, or nil for the root.
func (d *Directory) Parent() *Directory {
	return d.parent
}

// IsRoot reports whether d is the root directory.
func (d *Directory) IsRoot() bool {
	return d.parent == nil
}

// FullPath returns the absolute path of d. The root is "/"; every other
// path has no trailing slash. Computed on demand - the tree is immutable so
// recomputation is always safe.
func (d *Directory) FullPath() string {
	if d.parent == nil {
		return "/"
	}
	parent := d.parent.FullPath()
	if parent == "/" {
		return "/" + d.name
	}
	return parent + "/" + d.name
}

// Equal reports whether two directories denote the same absolute path.
// Equality is structural: independently built values compare equal.
func (d *Directory) Equal(other *Directory) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.FullPath() == other.FullPath()
}

// Dir validates name and returns a child Directory of d. No filesystem
// access. On failure the error is a *validate.Error carrying every finding.
func (d *Directory) Dir(name string) (*Directory, error) {
	if err := validate.Check(name); err != nil {
		return nil, err
	}
	return &Directory{name: name, parent: d}, nil
}

// File validates name and returns a File under d. No filesystem access.
func (d *Directory) File(name string) (*File, error) {
	if err := validate.Check(name); err != nil {
		return nil, err
	}
	return &File{name: name, parent: d}, nil
}

// Name returns the file's own name.
func (f *File) Name() string {
	return f.name
}

// Parent returns the directory owning the file. Never nil.
func (f *File) Parent() *Directory {
	return f.parent
}

// FullPath returns the absolute path of f.
func (f *File) FullPath() string {
	parent := f.parent.FullPath()
	if parent == "/" {
		return "/" + f.name
	}
	return parent + "/" + f.name
}
