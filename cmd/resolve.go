// resolve.go implements the "pathfs resolve" command for path parsing.
//
// Resolve is the dry-run of every other command: it parses an absolute path
// into its validated segments without touching the filesystem, so users can
// see exactly what mkdir or write would operate on - or why the path is
// rejected, with every bad segment listed, not just the first.

package cmd

import (
	"errors"
	"fmt"

	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH",
		Short: "Parse an absolute path and print its validated segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := tree.Build(args[0])
			log.Event("cli:resolve", "resolve").Author(Author()).Path(args[0]).Write(err)
			if err != nil {
				var berr *tree.BuildError
				if JSON() && errors.As(err, &berr) {
					type badSegment struct {
						Segment  string   `json:"segment"`
						Findings []string `json:"findings"`
					}
					bad := make([]badSegment, 0, len(berr.Segments))
					for _, s := range berr.Segments {
						b := badSegment{Segment: s.Segment}
						for _, f := range s.Findings {
							b.Findings = append(b.Findings, f.Kind.String())
						}
						bad = append(bad, b)
					}
					_ = PrintJSON(map[string]any{"path": args[0], "invalid_segments": bad})
					c.SilenceErrors = true
					c.SilenceUsage = true
					return nil
				}
				return PrintJSONError(err)
			}

			// Walk back up to list segments root-first.
			var segments []string
			for d := dir; !d.IsRoot(); d = d.Parent() {
				segments = append([]string{d.Name()}, segments...)
			}

			if JSON() {
				return PrintJSON(map[string]any{
					"path":     dir.FullPath(),
					"segments": segments,
					"root":     dir.IsRoot(),
				})
			}

			fmt.Fprintf(out, "path: %s\n", dir.FullPath())
			if dir.IsRoot() {
				fmt.Fprintln(out, "root directory")
				return nil
			}
			fmt.Fprintf(out, "segments: %d\n", len(segments))
			for i, s := range segments {
				fmt.Fprintf(out, "  %d. %s\n", i+1, s)
			}
			return nil
		},
	}
}
