package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bayesgo"
	"github.com/hupe1980/bayesgo/feature"
)

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	Limit int
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Rank categories for a document",
		Long: `Classify a document against the stored model and print the ranked
categories with their scores. Reads the document from the given file, or
from stdin when no file (or "-") is given.

Example:
  bayesgo classify --db ./model suspicious.txt
  cat suspicious.txt | bayesgo classify --db ./model`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			clf, err := bayesgo.Open(rootOpts.Database, bayesgo.ReadOnly(), bayesgo.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			defer clf.Close()

			results, err := clf.Classify(feature.Extract(text), bayesgo.WithLimit(opts.Limit))
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("model at %s has no trained categories", rootOpts.Database)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", r.Category, r.Score)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", bayesgo.DefaultClassifyLimit, "maximum number of categories to print")

	return cmd
}

func readDocument(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(text), nil
	}
	text, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(text), nil
}
