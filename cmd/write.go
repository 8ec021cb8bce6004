// write.go implements the "pathfs write" command.
//
// Design: content comes from the second argument or, when omitted, from
// stdin, so both quick one-liners and piped workflows are covered. The
// --diff flag previews what the write changes against the current file
// contents; --dry-run shows the same preview without touching the
// filesystem at all.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/pathfs/internal/diff"
	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/tree"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newWriteCmd() *cobra.Command {
	var showDiff, dryRun bool

	c := &cobra.Command{
		Use:   "write PATH [CONTENT]",
		Short: "Write a file",
		Long: `Writes CONTENT to the file at PATH, creating it or replacing its
contents. When CONTENT is omitted it is read from stdin. The parent
directory must already exist.

  pathfs write /tmp/note.txt 'hello'
  cat report.md | pathfs write /tmp/report.md
  pathfs write --diff /tmp/note.txt 'hello again'
  pathfs write --dry-run /tmp/note.txt 'preview only'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			file, err := tree.BuildFile(args[0])
			if err != nil {
				log.Event("cli:write", "write").Author(Author()).Path(args[0]).Write(err)
				return PrintJSONError(err)
			}

			var content string
			if len(args) == 2 {
				content = args[1]
			} else {
				b, err := io.ReadAll(c.InOrStdin())
				if err != nil {
					return PrintJSONError(fmt.Errorf("read stdin: %w", err))
				}
				content = string(b)
			}

			if showDiff || dryRun {
				if err := printWriteDiff(file, content); err != nil {
					return PrintJSONError(err)
				}
			}
			if dryRun {
				log.Event("cli:write", "dry-run").Author(Author()).Path(file.FullPath()).Write(nil)
				return nil
			}

			err = file.Write(fsys, content)
			log.Event("cli:write", "write").Author(Author()).
				Path(file.FullPath()).Detail("bytes", len(content)).Write(err)
			if err != nil {
				return PrintJSONError(err)
			}

			if JSON() {
				return PrintJSON(map[string]any{"path": file.FullPath(), "bytes": len(content)})
			}
			fmt.Fprintf(out, "wrote %s (%d bytes)\n", file.FullPath(), len(content))
			return nil
		},
	}
	c.Flags().BoolVar(&showDiff, "diff", false, "Show changes against the current contents before writing")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Show changes without writing")
	return c
}

// printWriteDiff renders the change the write would make. A file that does
// not exist yet diffs against empty content under a "(new file)" label; any
// other read failure aborts, since previewing against unknown contents
// would be misleading.
func printWriteDiff(file *tree.File, content string) error {
	old, err := file.Read(fsys)
	oldLabel := file.FullPath()
	if err != nil {
		if !errors.Is(err, tree.ErrFileNotFound) {
			return err
		}
		old = ""
		oldLabel = "(new file)"
	}

	r := diff.Compute(old, content, oldLabel, file.FullPath())
	colour := conf.Colour() && term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprint(out, r.Format(colour))
	return nil
}
