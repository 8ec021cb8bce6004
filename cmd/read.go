// read.go implements the "pathfs read" command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read PATH",
		Short: "Read a file's contents",
		Long: `Reads the file at PATH and writes its contents to stdout unchanged. A
directory at PATH is reported as such, not as a generic read failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			file, err := tree.BuildFile(args[0])
			if err != nil {
				log.Event("cli:read", "read").Author(Author()).Path(args[0]).Write(err)
				return PrintJSONError(err)
			}

			content, err := file.Read(fsys)
			log.Event("cli:read", "read").Author(Author()).Path(file.FullPath()).Write(err)
			if err != nil {
				return PrintJSONError(err)
			}

			if JSON() {
				return PrintJSON(map[string]any{"path": file.FullPath(), "content": string(content)})
			}
			fmt.Fprint(out, string(content))
			return nil
		},
	}
}
