package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bayesgo"
	"github.com/hupe1980/bayesgo/corpus"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Workers int
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <corpus-dir>",
		Short: "Evaluate model accuracy on a labeled corpus directory",
		Long: `Classify every document in a labeled corpus directory and score the
top-ranked category against the directory label.

Example:
  bayesgo eval --db ./model ./corpus2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clf, err := bayesgo.Open(rootOpts.Database, bayesgo.ReadOnly(), bayesgo.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			defer clf.Close()

			src := corpus.NewSource(os.DirFS(args[0]))

			var evalOpts []corpus.EvalOption
			if opts.Workers > 0 {
				evalOpts = append(evalOpts, corpus.WithWorkers(opts.Workers))
			}
			report, err := corpus.Evaluate(cmd.Context(), clf, src, evalOpts...)
			if err != nil {
				return err
			}

			labels := make([]string, 0, len(report.PerLabel))
			for label := range report.PerLabel {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				lr := report.PerLabel[label]
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d correct\n", label, lr.Correct, lr.Total)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d documents, %.2f%% accurate\n",
				report.Total, 100*report.Accuracy())
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent classification workers (default GOMAXPROCS)")

	return cmd
}
