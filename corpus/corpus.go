// Package corpus drives training and evaluation over labeled document
// trees. A corpus is a directory whose immediate subdirectories name the
// categories and whose files are one document each:
//
//	corpus/
//	  spam/  0001.txt 0002.txt ...
//	  ham/   0001.txt 0002.txt ...
package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bayesgo"
	"github.com/hupe1980/bayesgo/feature"
)

// Trainer consumes labeled feature sets. *bayesgo.Classifier satisfies it.
type Trainer interface {
	Train(features []string, categories ...string) error
}

// Classifier ranks categories for a feature set. *bayesgo.Classifier
// satisfies it.
type Classifier interface {
	Classify(features []string, optFns ...bayesgo.ClassifyOption) ([]bayesgo.Result, error)
}

// Source is a labeled document source rooted at a filesystem. Each
// top-level directory is a label; each regular file directly inside it is
// one document.
type Source struct {
	fsys      fs.FS
	extractor *feature.Extractor
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithExtractor overrides the feature extractor used on document text.
func WithExtractor(e *feature.Extractor) SourceOption {
	return func(s *Source) {
		s.extractor = e
	}
}

// NewSource creates a Source over fsys.
func NewSource(fsys fs.FS, optFns ...SourceOption) *Source {
	s := &Source{
		fsys:      fsys,
		extractor: feature.NewExtractor(),
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Walk visits every document, calling fn with the directory label and the
// extracted features. It stops on the first error.
func (s *Source) Walk(fn func(label string, features []string) error) error {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return fmt.Errorf("corpus: read root: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := entry.Name()

		files, err := fs.ReadDir(s.fsys, label)
		if err != nil {
			return fmt.Errorf("corpus: read label %s: %w", label, err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			text, err := fs.ReadFile(s.fsys, label+"/"+file.Name())
			if err != nil {
				return fmt.Errorf("corpus: read %s/%s: %w", label, file.Name(), err)
			}
			if err := fn(label, s.extractor.Extract(string(text))); err != nil {
				return err
			}
		}
	}
	return nil
}

// Train feeds every document of the source to the trainer and returns the
// number of documents trained per label.
func Train(ctx context.Context, t Trainer, src *Source) (map[string]int, error) {
	trained := make(map[string]int)
	err := src.Walk(func(label string, features []string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.Train(features, label); err != nil {
			return err
		}
		trained[label]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trained, nil
}

// LabelReport is the per-label slice of an evaluation Report.
type LabelReport struct {
	Total   int
	Correct int
}

// Report summarizes an evaluation run.
type Report struct {
	Total    int
	Correct  int
	PerLabel map[string]LabelReport
}

// Accuracy returns the fraction of documents whose top-ranked category
// matched the directory label, 0 for an empty corpus.
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

type evalOptions struct {
	workers int
}

// EvalOption configures Evaluate.
type EvalOption func(*evalOptions)

// WithWorkers sets the number of concurrent classification workers. The
// default is GOMAXPROCS.
func WithWorkers(n int) EvalOption {
	return func(o *evalOptions) {
		o.workers = n
	}
}

// Evaluate classifies every document of the source and scores the
// top-ranked category against the directory label. Classification is
// read-only, so documents are fanned out across workers.
func Evaluate(ctx context.Context, c Classifier, src *Source, optFns ...EvalOption) (*Report, error) {
	opts := evalOptions{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range optFns {
		fn(&opts)
	}

	report := &Report{PerLabel: make(map[string]LabelReport)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)

	walkErr := src.Walk(func(label string, features []string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Go(func() error {
			results, err := c.Classify(features, bayesgo.WithLimit(1))
			if err != nil {
				return err
			}
			correct := len(results) > 0 && results[0].Category == label

			mu.Lock()
			defer mu.Unlock()
			report.Total++
			lr := report.PerLabel[label]
			lr.Total++
			if correct {
				report.Correct++
				lr.Correct++
			}
			report.PerLabel[label] = lr
			return nil
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, walkErr
	}
	return report, nil
}
