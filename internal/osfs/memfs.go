// memfs.go provides an in-memory FS for tests.
//
// Separated from osfs.go to keep the production boundary free of test
// scaffolding (the type stays in the package proper because command tests in
// other packages also need it). MemFS fabricates the same error classes the
// real OS produces - fs.ErrNotExist, fs.ErrExist, fs.ErrPermission,
// syscall.ENOTDIR, syscall.EISDIR - so the tree package's classification
// logic is exercised for real, not against stand-in sentinel errors.

package osfs

import (
	"io/fs"
	"path"
	"sync"
	"syscall"
)

type memEntry struct {
	isDir   bool
	content string
}

// MemFS is an in-memory filesystem rooted at "/". The zero value is not
// usable; construct with NewMemFS.
type MemFS struct {
	mu      sync.Mutex
	entries map[string]*memEntry
	denied  map[string]bool

	// StatHook, when non-nil, runs before every Stat with the lock released.
	// Tests use it to mutate the filesystem between an operation's calls,
	// simulating a concurrent process.
	StatHook func(fsys *MemFS, path string)

	// MkdirHook, when non-nil, runs instead of the normal Mkdir logic when
	// it returns a non-nil error.
	MkdirHook func(fsys *MemFS, path string) error
}

// NewMemFS returns an empty in-memory filesystem containing only the root
// directory.
func NewMemFS() *MemFS {
	return &MemFS{
		entries: map[string]*memEntry{"/": {isDir: true}},
		denied:  make(map[string]bool),
	}
}

// AddDir creates a directory and any missing ancestors. Test seeding only.
func (m *MemFS) AddDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addDirLocked(p)
}

// AddFile creates a file with content, creating missing ancestor
// directories. Test seeding only.
func (m *MemFS) AddFile(p, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addDirLocked(path.Dir(p))
	m.entries[path.Clean(p)] = &memEntry{content: content}
}

// Remove deletes the entry at p. Used by hooks to simulate concurrent
// deletion.
func (m *MemFS) Remove(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, path.Clean(p))
}

// Deny makes every operation on p fail with fs.ErrPermission.
func (m *MemFS) Deny(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[path.Clean(p)] = true
}

// Content returns the content of the file at p for assertions.
func (m *MemFS) Content(p string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[path.Clean(p)]
	if !ok || e.isDir {
		return "", false
	}
	return e.content, true
}

func (m *MemFS) addDirLocked(p string) {
	p = path.Clean(p)
	if p != "/" {
		m.addDirLocked(path.Dir(p))
	}
	if _, ok := m.entries[p]; !ok {
		m.entries[p] = &memEntry{isDir: true}
	}
}

// blockingFile returns the nearest strict ancestor of p that exists as a
// file, or "" if every existing ancestor is a directory.
func (m *MemFS) blockingFile(p string) string {
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		if e, ok := m.entries[dir]; ok && !e.isDir {
			return dir
		}
		if dir == "/" {
			return ""
		}
	}
}

func (m *MemFS) Stat(p string) (Info, error) {
	if m.StatHook != nil {
		m.StatHook(m, p)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	if m.denied[p] {
		return Info{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrPermission}
	}
	if blocker := m.blockingFile(p); blocker != "" {
		return Info{}, &fs.PathError{Op: "stat", Path: p, Err: syscall.ENOTDIR}
	}
	e, ok := m.entries[p]
	if !ok {
		return Info{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return Info{IsDir: e.isDir}, nil
}

func (m *MemFS) Mkdir(p string) error {
	if m.MkdirHook != nil {
		if err := m.MkdirHook(m, p); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	if m.denied[p] {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrPermission}
	}
	if _, ok := m.entries[p]; ok {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
	}
	parent, ok := m.entries[path.Dir(p)]
	switch {
	case !ok:
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrNotExist}
	case !parent.isDir:
		return &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
	}
	m.entries[p] = &memEntry{isDir: true}
	return nil
}

func (m *MemFS) ReadFile(p string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	if m.denied[p] {
		return "", &fs.PathError{Op: "open", Path: p, Err: fs.ErrPermission}
	}
	if blocker := m.blockingFile(p); blocker != "" {
		return "", &fs.PathError{Op: "open", Path: p, Err: syscall.ENOTDIR}
	}
	e, ok := m.entries[p]
	switch {
	case !ok:
		return "", &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	case e.isDir:
		return "", &fs.PathError{Op: "read", Path: p, Err: syscall.EISDIR}
	}
	return e.content, nil
}

func (m *MemFS) WriteFile(p, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	if m.denied[p] {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrPermission}
	}
	if e, ok := m.entries[p]; ok && e.isDir {
		return &fs.PathError{Op: "open", Path: p, Err: syscall.EISDIR}
	}
	parent, ok := m.entries[path.Dir(p)]
	switch {
	case !ok:
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	case !parent.isDir:
		return &fs.PathError{Op: "open", Path: p, Err: syscall.ENOTDIR}
	}
	m.entries[p] = &memEntry{content: content}
	return nil
}
