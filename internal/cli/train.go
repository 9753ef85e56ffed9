package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bayesgo"
	"github.com/hupe1980/bayesgo/corpus"
)

// NewTrainCommand creates the train command.
func NewTrainCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "train <corpus-dir>",
		Short: "Train the model on a labeled corpus directory",
		Long: `Train the model on a corpus directory whose subdirectories name the
categories and whose files are one document each:

  corpus/
    spam/ 0001.txt 0002.txt ...
    ham/  0001.txt 0002.txt ...

Example:
  bayesgo train --db ./model ./corpus`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clf, err := bayesgo.Open(rootOpts.Database, bayesgo.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			defer clf.Close()

			src := corpus.NewSource(os.DirFS(args[0]))
			trained, err := corpus.Train(cmd.Context(), clf, src)
			if err != nil {
				return err
			}

			labels := make([]string, 0, len(trained))
			for label := range trained {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Fprintf(cmd.OutOrStdout(), "trained %d %s documents\n", trained[label], label)
			}
			return nil
		},
	}
}
