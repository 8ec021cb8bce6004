// check.go implements the "pathfs check" command for name validation.
//
// Design: every name is validated and reported even when earlier ones fail,
// mirroring the validator's own aggregation - a batch of names yields the
// whole damage in one run. The exit code is non-zero when any name is
// invalid so scripts can gate on it.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/validate"
	"github.com/spf13/cobra"
)

type checkFinding struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type checkResult struct {
	Name     string         `json:"name"`
	Valid    bool           `json:"valid"`
	Findings []checkFinding `json:"findings,omitempty"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME...",
		Short: "Validate names for cross-filesystem safety",
		Long: `Validates each NAME as a single path component and reports every rule it
violates: length limits, reserved names, separators, NUL and control
characters, and characters rejected by FAT32/exFAT/NTFS.

  pathfs check report.md          # ok
  pathfs check 'draft*v2?.md'     # lists * and ? as invalid`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			results := make([]checkResult, 0, len(args))
			invalid := 0
			for _, name := range args {
				findings := validate.Name(name)
				r := checkResult{Name: name, Valid: len(findings) == 0}
				for _, f := range findings {
					r.Findings = append(r.Findings, checkFinding{
						Kind:    f.Kind.String(),
						Message: f.Message(),
					})
				}
				if !r.Valid {
					invalid++
				}
				results = append(results, r)
			}

			log.Event("cli:check", "validate").Author(Author()).
				Detail("names", len(args)).Detail("invalid", invalid).Write(nil)

			if JSON() {
				if err := PrintJSON(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					if r.Valid {
						fmt.Fprintf(out, "%s: ok\n", r.Name)
						continue
					}
					fmt.Fprintf(out, "%s: invalid\n", r.Name)
					for _, f := range r.Findings {
						fmt.Fprintf(out, "  %s\n", f.Message)
					}
				}
			}

			if invalid > 0 {
				c.SilenceUsage = true
				c.SilenceErrors = true
				return fmt.Errorf("%d of %d names invalid", invalid, len(args))
			}
			return nil
		},
	}
}
