package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgraph/internal/app"
)

func (c *CLI) newStatCmd() *cobra.Command {
	var opts app.StatOptions

	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Print graph sizes and fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.app.Load(cmd.Context(), c.globals.Dir); err != nil {
				return err
			}
			return c.app.Stat(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "Also print load metrics in the Prometheus text format")
	return cmd
}
