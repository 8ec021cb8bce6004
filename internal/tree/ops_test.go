package tree

import (
	"io/fs"
	"testing"

	"github.com/jpl-au/pathfs/internal/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, path string) *Directory {
	t.Helper()
	dir, err := Build(path)
	require.NoError(t, err)
	return dir
}

func TestExists(t *testing.T) {
	fsys := osfs.NewMemFS()
	fsys.AddDir("/home/user")
	fsys.AddFile("/home/user/notes.txt", "hi")

	t.Run("directory present", func(t *testing.T) {
		ok, err := mustBuild(t, "/home/user").Exists(fsys)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		ok, err := mustBuild(t, "/home/nobody").Exists(fsys)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("file occupies the path", func(t *testing.T) {
		_, err := mustBuild(t, "/home/user/notes.txt").Exists(fsys)
		assert.ErrorIs(t, err, ErrFileExists)
	})

	t.Run("file blocks an ancestor", func(t *testing.T) {
		_, err := mustBuild(t, "/home/user/notes.txt/deeper").Exists(fsys)
		assert.ErrorIs(t, err, ErrFileExists)
	})

	t.Run("permission failure is an i/o error", func(t *testing.T) {
		fsys.Deny("/home/secret")
		_, err := mustBuild(t, "/home/secret").Exists(fsys)
		assert.ErrorIs(t, err, ErrIO)
	})
}

func TestMkdir(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		created, err := mustBuild(t, "/fresh").Mkdir(fsys)
		require.NoError(t, err)
		assert.True(t, created)

		ok, err := mustBuild(t, "/fresh").Exists(fsys)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("already exists is not an error", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddDir("/existing")
		created, err := mustBuild(t, "/existing").Mkdir(fsys)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("file in the way", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddFile("/taken", "")
		_, err := mustBuild(t, "/taken").Mkdir(fsys)
		assert.ErrorIs(t, err, ErrFileExists)
	})

	t.Run("parent missing", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		_, err := mustBuild(t, "/no/parent").Mkdir(fsys)
		assert.ErrorIs(t, err, ErrParentNotFound)
	})

	t.Run("permission denied", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.Deny("/locked")
		_, err := mustBuild(t, "/locked").Mkdir(fsys)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("vanished between mkdir and re-check", func(t *testing.T) {
		// The OS says "already exists" but the entry is gone by the time we
		// look again. That contradiction is surfaced, not swallowed.
		fsys := osfs.NewMemFS()
		fsys.MkdirHook = func(_ *osfs.MemFS, path string) error {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
		}
		_, err := mustBuild(t, "/phantom").Mkdir(fsys)
		require.ErrorIs(t, err, ErrIO)
		assert.Contains(t, err.Error(), "absent when re-checked")
	})

	t.Run("race lost to another creator", func(t *testing.T) {
		// Simulate another process creating the directory between our mkdir
		// attempt and the disambiguating stat.
		fsys := osfs.NewMemFS()
		fsys.MkdirHook = func(m *osfs.MemFS, path string) error {
			m.AddDir(path)
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
		}
		created, err := mustBuild(t, "/contended").Mkdir(fsys)
		require.NoError(t, err)
		assert.False(t, created, "directory another caller won reads as already existing")
	})
}

func TestMkdirp(t *testing.T) {
	t.Run("creates every missing ancestor", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		created, err := mustBuild(t, "/a/b/c/d").Mkdirp(fsys)
		require.NoError(t, err)
		assert.True(t, created)

		for _, p := range []string{"/a", "/a/b", "/a/b/c", "/a/b/c/d"} {
			ok, err := mustBuild(t, p).Exists(fsys)
			require.NoError(t, err)
			assert.True(t, ok, "missing %s", p)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		dir := mustBuild(t, "/a/b/c")

		created, err := dir.Mkdirp(fsys)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = dir.Mkdirp(fsys)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("ancestor failure stops the descent", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddFile("/blocker", "")
		_, err := mustBuild(t, "/blocker/child").Mkdirp(fsys)
		require.ErrorIs(t, err, ErrFileExists)

		ok, exErr := mustBuild(t, "/blocker/child").Exists(fsys)
		if exErr == nil {
			assert.False(t, ok, "child must not be created after ancestor failure")
		}
	})

	t.Run("parent vanishing mid-call is an i/o error", func(t *testing.T) {
		// Every ancestor was just ensured, so a PARENT_NOT_FOUND from the
		// leaf mkdir means something external removed it. The hook deletes
		// the parent just before the leaf mkdir runs.
		fsys := osfs.NewMemFS()
		fsys.MkdirHook = func(m *osfs.MemFS, path string) error {
			if path == "/a/b" {
				m.Remove("/a")
				return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
			}
			return nil
		}
		_, err := mustBuild(t, "/a/b").Mkdirp(fsys)
		require.ErrorIs(t, err, ErrIO)
		assert.Contains(t, err.Error(), "just ensured")
	})
}

func TestFileRead(t *testing.T) {
	fsys := osfs.NewMemFS()
	fsys.AddFile("/etc/hosts", "127.0.0.1 localhost\n")
	fsys.AddDir("/etc/conf.d")
	fsys.AddFile("/etc/shadow", "secret")
	fsys.Deny("/etc/shadow")

	file := func(t *testing.T, dir, name string) *File {
		t.Helper()
		f, err := mustBuild(t, dir).File(name)
		require.NoError(t, err)
		return f
	}

	t.Run("reads content", func(t *testing.T) {
		content, err := file(t, "/etc", "hosts").Read(fsys)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1 localhost\n", content)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := file(t, "/etc", "missing").Read(fsys)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("is a directory", func(t *testing.T) {
		_, err := file(t, "/etc", "conf.d").Read(fsys)
		assert.ErrorIs(t, err, ErrIsDirectory)
	})

	t.Run("permission denied", func(t *testing.T) {
		_, err := file(t, "/etc", "shadow").Read(fsys)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestFileWrite(t *testing.T) {
	t.Run("writes content", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddDir("/data")
		f, err := mustBuild(t, "/data").File("out.txt")
		require.NoError(t, err)

		require.NoError(t, f.Write(fsys, "payload"))
		content, ok := fsys.Content("/data/out.txt")
		require.True(t, ok)
		assert.Equal(t, "payload", content)
	})

	t.Run("overwrites", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddFile("/data/out.txt", "old")
		f, err := mustBuild(t, "/data").File("out.txt")
		require.NoError(t, err)

		require.NoError(t, f.Write(fsys, "new"))
		content, _ := fsys.Content("/data/out.txt")
		assert.Equal(t, "new", content)
	})

	t.Run("parent missing", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		f, err := mustBuild(t, "/nowhere").File("out.txt")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Write(fsys, "x"), ErrParentNotFound)
	})

	t.Run("directory in the way", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddDir("/data/out.txt")
		f, err := mustBuild(t, "/data").File("out.txt")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Write(fsys, "x"), ErrIsDirectory)
	})

	t.Run("permission denied", func(t *testing.T) {
		fsys := osfs.NewMemFS()
		fsys.AddFile("/data/locked.txt", "")
		fsys.Deny("/data/locked.txt")
		f, err := mustBuild(t, "/data").File("locked.txt")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Write(fsys, "x"), ErrPermissionDenied)
	})
}

func TestOpsAgainstRealFS(t *testing.T) {
	// Same classification against the real OS, inside a temp directory.
	fsys := osfs.Real()
	base := t.TempDir()

	dir, err := Build(base + "/nested/deep")
	require.NoError(t, err)

	created, err := dir.Mkdirp(fsys)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = dir.Mkdirp(fsys)
	require.NoError(t, err)
	assert.False(t, created)

	f, err := dir.File("note.txt")
	require.NoError(t, err)
	require.NoError(t, f.Write(fsys, "hello"))

	content, err := f.Read(fsys)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	_, err = dir.File("note.txt")
	require.NoError(t, err)
	_, err = mustBuild(t, f.FullPath()).Mkdir(fsys)
	assert.ErrorIs(t, err, ErrFileExists)
}
