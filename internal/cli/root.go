// Package cli implements the bayesgo command line tool: a thin driver
// around the classifier for batch training, classification, and model
// maintenance.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bayesgo"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Database string
	Verbose  bool
}

// Logger builds the classifier logger configured by the global flags.
func (o *RootOptions) Logger() *bayesgo.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return bayesgo.NewTextLogger(level)
}

// NewRootCommand creates the root command for the bayesgo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bayesgo",
		Short: "Persistent naive Bayes text classifier",
		Long: `bayesgo trains a naive Bayes text classifier on labeled document
directories and classifies new documents against the stored model.

A model is a Badger database directory; at most one process may hold it
for writing, while any number may open it read-only.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the model directory (required)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(NewTrainCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}
