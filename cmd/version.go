// version.go implements the "pathfs version" command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathfs/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, git commit, Go version, and platform.`,
		Run: func(_ *cobra.Command, _ []string) {
			info := version.Get()
			if JSON() {
				_ = PrintJSON(info)
				return
			}
			fmt.Fprint(out, info.String())
		},
	}
}
