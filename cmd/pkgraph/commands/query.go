package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgraph/internal/app"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	var opts app.QueryOptions

	cmd := &cobra.Command{
		Use:   "query [names...]",
		Short: "List packages and their relations",
		Long: `List packages of the loaded graph, one "name-version" line each.

Names and --who* arguments may be glob patterns. --who* arguments take the
form NAME or NAME=VERSION and keep only packages offering or declaring a
matching record.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app.Load(cmd.Context(), c.globals.Dir); err != nil {
				return err
			}
			opts.Names = args
			return c.app.Query(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Provides, "provides", false, "Show provides for the given packages")
	flags.BoolVar(&opts.Requires, "requires", false, "Show requires for the given packages")
	flags.BoolVar(&opts.Upgrades, "upgrades", false, "Show upgrades for the given packages")
	flags.BoolVar(&opts.Conflicts, "conflicts", false, "Show conflicts for the given packages")
	flags.BoolVar(&opts.Satisfies, "satisfies", false, "Show packages satisfying each shown constraint")
	flags.StringArrayVar(&opts.WhoProvides, "whoprovides", nil, "Show only packages providing `DEP`")
	flags.StringArrayVar(&opts.WhoRequires, "whorequires", nil, "Show only packages requiring `DEP`")
	flags.StringArrayVar(&opts.WhoUpgrades, "whoupgrades", nil, "Show only packages upgrading `DEP`")
	flags.StringArrayVar(&opts.WhoConflicts, "whoconflicts", nil, "Show only packages conflicting with `DEP`")
	return cmd
}
