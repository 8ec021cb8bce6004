package cmd

import (
	"os"
	"testing"
)

func TestMkdir(t *testing.T) {
	t.Run("create directory", func(t *testing.T) {
		env := newTestEnv(t)
		target := env.path("newdir")

		out := env.run("mkdir", target)
		env.equals(out, "created "+target)

		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory at %s, got %v, %v", target, info, err)
		}
	})

	t.Run("existing directory is not created", func(t *testing.T) {
		env := newTestEnv(t)
		target := env.path("dup")

		env.run("mkdir", target)
		out := env.run("mkdir", target)
		env.equals(out, "exists "+target)
	})

	t.Run("missing parent fails without --parents", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("mkdir", env.path("a", "b"))
		if err == nil {
			t.Error("mkdir with missing parent should fail")
		}
		env.contains(out, "parent directory not found")
	})

	t.Run("parents creates ancestors", func(t *testing.T) {
		env := newTestEnv(t)
		target := env.path("a", "b", "c")

		out := env.run("mkdir", "-p", target)
		env.equals(out, "created "+target)

		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory at %s, got %v, %v", target, info, err)
		}
	})

	t.Run("parents on existing directory reports exists", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("mkdir", "--parents", env.dir)
		env.equals(out, "exists "+env.dir)
	})

	t.Run("file at path fails", func(t *testing.T) {
		env := newTestEnv(t)
		file := env.path("taken")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := env.runErr("mkdir", file)
		if err == nil {
			t.Error("mkdir over a file should fail")
		}
	})

	t.Run("invalid segment rejected before touching the filesystem", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("mkdir", env.path("bad:dir"))
		if err == nil {
			t.Error("mkdir with invalid segment should fail")
		}
		env.contains(out, "invalid path")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("mkdir", env.path("jdir"), "-o", "json")
		env.contains(out, `"created":true`)

		out = env.run("mkdir", env.path("jdir"), "-o", "json")
		env.contains(out, `"created":false`)
	})
}
