// guide.go implements the "pathfs guide" command for documentation access.
//
// Design: Guides are embedded in the binary via the guide package, ensuring
// documentation is always available without external files. Terminal output
// gets glamour rendering for readability; pipe/redirect gets raw markdown
// for machine consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/pathfs/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [command]",
		Short: "Show the pathfs usage guide",
		Long: `Outputs the pathfs guide for LLMs and humans.

  pathfs guide           # main guide
  pathfs guide check     # detailed check guide
  pathfs guide write     # detailed write guide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				return PrintJSONError(err)
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(out, rendered)
					return nil
				}
			}

			fmt.Fprint(out, content)
			return nil
		},
	}
}
