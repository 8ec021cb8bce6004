// exists.go implements the "pathfs exists" command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/spf13/cobra"
)

func newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists PATH",
		Short: "Report whether a directory exists",
		Long: `Reports whether a directory exists at PATH. A file occupying the path (or
blocking an ancestor) is an error, not "false": the path cannot hold a
directory until the file is moved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := tree.Build(args[0])
			if err != nil {
				log.Event("cli:exists", "exists").Author(Author()).Path(args[0]).Write(err)
				return PrintJSONError(err)
			}

			ok, err := dir.Exists(fsys)
			log.Event("cli:exists", "exists").Author(Author()).Path(dir.FullPath()).Write(err)
			if err != nil {
				return PrintJSONError(err)
			}

			if JSON() {
				return PrintJSON(map[string]any{"path": dir.FullPath(), "exists": ok})
			}
			fmt.Fprintln(out, ok)
			return nil
		},
	}
}
