// config.go implements the "pathfs config" command for configuration
// management.
//
// Design: Config follows a cascade model similar to git: local config
// (.pathfs/config.yaml) takes precedence over global (~/.pathfs/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.
// Writes go to the same place reads come from.

package cmd

import (
	"fmt"

	"github.com/jpl-au/pathfs/internal/config"
	"github.com/jpl-au/pathfs/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  pathfs config                   # show config
  pathfs config modes.dir         # show modes.dir value
  pathfs config modes.dir 0750    # set modes.dir

Configuration locations:
  Global: ~/.pathfs/config.yaml
  Local:  .pathfs/config.yaml

Uses local config if it exists, otherwise global.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.pathfs/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values
		for k, v := range cfg.All() {
			fmt.Fprintf(out, "%s: %s\n", k, v)
		}
		log.Event("cli:config", "list").Author(Author()).Write(nil)

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("cli:config", "get").Author(Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		fmt.Fprintln(out, v)

	case 2:
		// Set value - write to same place we read from
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
