package cmd

import "testing"

func TestResolve(t *testing.T) {
	t.Run("nested path lists segments", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("resolve", "/home/user/docs")
		env.contains(out, "path: /home/user/docs")
		env.contains(out, "segments: 3")
		env.contains(out, "1. home")
		env.contains(out, "2. user")
		env.contains(out, "3. docs")
	})

	t.Run("root path", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("resolve", "/")
		env.contains(out, "path: /")
		env.contains(out, "root directory")
	})

	t.Run("relative path rejected", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("resolve", "home/user")
		if err == nil {
			t.Error("resolve with relative path should fail")
		}
		env.contains(out, "absolute")
	})

	t.Run("trailing slash rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("resolve", "/home/user/")
		if err == nil {
			t.Error("resolve with trailing slash should fail")
		}
	})

	t.Run("all bad segments reported", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("resolve", "/home//user*name")
		if err == nil {
			t.Error("resolve with invalid segments should fail")
		}
		// Both the empty segment and the * segment are reported
		env.contains(out, "empty")
		env.contains(out, "user*name")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("resolve", "/var/log", "-o", "json")
		env.contains(out, `"path":"/var/log"`)
		env.contains(out, `"segments":["var","log"]`)
	})

	t.Run("JSON output for invalid path", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("resolve", "/a/b*d", "-o", "json")
		env.contains(out, `"invalid_segments"`)
		env.contains(out, `"segment":"b*d"`)
		env.contains(out, `"invalid_char"`)
	})
}
