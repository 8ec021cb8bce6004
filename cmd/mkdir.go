// mkdir.go implements the "pathfs mkdir" command.
//
// Design: "already exists" is a success with distinct wording, matching the
// library's Mkdir/Mkdirp contract - scripts that only care the directory is
// there can ignore the distinction, scripts that care can read it from the
// message or the JSON "created" field.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/spf13/cobra"
)

func newMkdirCmd() *cobra.Command {
	var parents bool

	c := &cobra.Command{
		Use:   "mkdir PATH",
		Short: "Create a directory",
		Long: `Creates the directory at PATH. With --parents, missing ancestors are
created as well and a directory another process created concurrently counts
as already existing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := tree.Build(args[0])
			if err != nil {
				log.Event("cli:mkdir", "mkdir").Author(Author()).Path(args[0]).Write(err)
				return PrintJSONError(err)
			}

			var created bool
			action := "mkdir"
			if parents {
				action = "mkdirp"
				created, err = dir.Mkdirp(fsys)
			} else {
				created, err = dir.Mkdir(fsys)
			}
			log.Event("cli:mkdir", action).Author(Author()).
				Path(dir.FullPath()).Created(created).Write(err)
			if err != nil {
				return PrintJSONError(err)
			}

			if JSON() {
				return PrintJSON(map[string]any{"path": dir.FullPath(), "created": created})
			}
			if created {
				fmt.Fprintf(out, "created %s\n", dir.FullPath())
			} else {
				fmt.Fprintf(out, "exists %s\n", dir.FullPath())
			}
			return nil
		},
	}
	c.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing ancestor directories")
	return c
}
