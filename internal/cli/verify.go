package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bayesgo"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the model's counter invariants",
		Long: `Recompute the global document total from the per-category counters and
compare it to the stored total. A mismatch indicates a crash between the
paired counter bumps of a past training call.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clf, err := bayesgo.Open(rootOpts.Database, bayesgo.ReadOnly(), bayesgo.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			defer clf.Close()

			report, err := clf.VerifyCounts()
			if err != nil {
				return err
			}
			if !report.Consistent() {
				return fmt.Errorf("count mismatch: stored total %d, per-category sum %d",
					report.Total, report.CategorySum)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d documents across %d categories\n",
				report.Total, len(report.PerCategory))
			return nil
		},
	}
}
