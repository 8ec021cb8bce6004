/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Accessors are provided so command implementations read flag
// values without coupling to cobra internals. The JSON() helper simplifies
// output format detection across all commands.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/pathfs/internal/config"
	"github.com/jpl-au/pathfs/internal/osfs"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output string
	author string
)

// conf is the configuration loaded by PersistentPreRunE.
var conf = &config.Config{}

// fsys is the filesystem all commands operate on. Defaults to the real OS;
// PersistentPreRunE rebuilds it with configured modes. Tests replace it via
// SetFS.
var (
	fsys      osfs.FS = osfs.Real()
	fsysFixed bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns the author flag value.
func Author() string { return author }

// FS returns the filesystem commands operate on.
func FS() osfs.FS { return fsys }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// SetFS pins the filesystem (for testing); PersistentPreRunE will not
// replace it afterwards.
func SetFS(f osfs.FS) {
	fsys = f
	fsysFixed = true
}

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON. The
// structured outcome kind is included when the error carries one, so scripts
// branch on "kind", not on message text.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	obj := map[string]string{"error": err.Error()}
	var op *tree.OpError
	if errors.As(err, &op) {
		obj["kind"] = op.Kind.String()
	}
	// We ignore the error from PrintJSON here because if we can't print the
	// error, checking it is futile. We just return nil to suppress Cobra's
	// duplicate printing.
	_ = PrintJSON(obj)
	return nil
}

// detectAuthor resolves the default author for audit log attribution.
// Returns empty string when config is missing or has no author set.
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Audit log attribution")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
