package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bayesgo"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print model counters",
		Long: `Print the trained document totals of the model: the global count and
the per-category counts, in the store's key order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clf, err := bayesgo.Open(rootOpts.Database, bayesgo.ReadOnly(), bayesgo.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			defer clf.Close()

			total, err := clf.TotalCount()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "documents: %d\n", total)

			categories, err := clf.Categories()
			if err != nil {
				return err
			}
			for _, category := range categories {
				count, err := clf.CategoryCount(category)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", category, count)
			}
			return nil
		},
	}
}
