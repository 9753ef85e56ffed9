package bayesgo

import (
	"math"
	"sort"
	"time"

	"github.com/hupe1980/bayesgo/countstore"
)

// DefaultClassifyLimit is the maximum number of ranked categories Classify
// returns unless overridden with WithLimit.
const DefaultClassifyLimit = 5

// neutralPrior is the probability a never-seen feature is smoothed toward.
const neutralPrior = 0.5

// Result is one ranked category from Classify.
type Result struct {
	Category string
	Score    float64
}

// Classifier is a persistent naive Bayes classifier. It owns exactly one
// count store for its lifetime and operates in one of two modes fixed at
// construction: read-write (training and classification) or read-only
// (classification only).
type Classifier struct {
	store    countstore.Store
	weight   float64
	readOnly bool
	logger   *Logger
	metrics  MetricsCollector
}

// Open opens (creating if necessary) a Badger-backed classifier at path.
// Pass ReadOnly() to open an existing model for classification only; the
// store is then shared safely with other read-only processes.
func Open(path string, optFns ...Option) (*Classifier, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var (
		store *countstore.BadgerStore
		err   error
	)
	if opts.readOnly {
		store, err = countstore.OpenReadOnly(path, opts.storeOptions...)
	} else {
		store, err = countstore.Open(path, opts.storeOptions...)
	}
	if err != nil {
		return nil, translateError(err)
	}

	return newClassifier(store, opts), nil
}

// New wraps an already-open count store. Use it with a MemoryStore for an
// ephemeral classifier, or with a store the caller configured directly.
func New(store countstore.Store, optFns ...Option) *Classifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return newClassifier(store, opts)
}

func newClassifier(store countstore.Store, opts options) *Classifier {
	return &Classifier{
		store:    store,
		weight:   opts.weight,
		readOnly: opts.readOnly,
		logger:   opts.logger,
		metrics:  opts.metrics,
	}
}

// Train associates the features with each of the given categories: every
// feature occurrence bumps its per-category counter (repeated tokens count
// repeatedly), and each category is credited with one trained document, even
// when features is empty.
func (c *Classifier) Train(features []string, categories ...string) error {
	start := time.Now()
	err := c.train(features, categories)
	c.metrics.RecordTrain(len(features), len(categories), time.Since(start), err)
	c.logger.LogTrain(len(features), categories, err)
	return err
}

func (c *Classifier) train(features []string, categories []string) error {
	if c.readOnly {
		return ErrReadOnly
	}
	for _, category := range categories {
		for _, feature := range features {
			if _, err := c.store.IncrFeatureCategory(feature, category); err != nil {
				return translateError(err)
			}
		}
		if _, err := c.store.IncrCategory(category); err != nil {
			return translateError(err)
		}
	}
	return nil
}

// FeatureProbability returns the maximum-likelihood estimate of feature
// given category: its occurrence count divided by the category's document
// count. It is 0 when the pair was never observed or the category has no
// documents.
func (c *Classifier) FeatureProbability(feature, category string) (float64, error) {
	count, err := c.store.FeatureCategoryCount(feature, category)
	if err != nil {
		return 0, translateError(err)
	}
	if count == 0 {
		return 0, nil
	}
	docs, err := c.store.CategoryCount(category)
	if err != nil {
		return 0, translateError(err)
	}
	if docs == 0 {
		return 0, nil
	}
	return float64(count) / float64(docs), nil
}

// WeightedProbability smooths the raw estimate toward a neutral 0.5,
// weighted against how often the feature has been seen across all
// categories. A feature with no observations anywhere comes out at exactly
// 0.5; a frequently-seen feature is dominated by its raw estimate.
func (c *Classifier) WeightedProbability(feature, category string) (float64, error) {
	initial, err := c.FeatureProbability(feature, category)
	if err != nil {
		return 0, err
	}
	totals, err := c.store.FeatureTotal(feature)
	if err != nil {
		return 0, translateError(err)
	}
	return (c.weight*neutralPrior + float64(totals)*initial) / (c.weight + float64(totals)), nil
}

// DocumentProbability returns the product of the weighted probabilities of
// every feature in the sequence. Repeated features multiply repeatedly; an
// empty sequence yields 1. The value is a joint-likelihood proxy, not a
// normalized probability.
func (c *Classifier) DocumentProbability(features []string, category string) (float64, error) {
	prob := 1.0
	for _, feature := range features {
		p, err := c.WeightedProbability(feature, category)
		if err != nil {
			return 0, err
		}
		prob *= p
	}
	return prob, nil
}

// WeightedDocumentProbability multiplies DocumentProbability by the
// category's prior, its share of all trained documents. It is exactly 0
// when the store holds no documents at all.
func (c *Classifier) WeightedDocumentProbability(features []string, category string) (float64, error) {
	total, err := c.store.TotalCount()
	if err != nil {
		return 0, translateError(err)
	}
	if total == 0 {
		return 0, nil
	}
	docs, err := c.store.CategoryCount(category)
	if err != nil {
		return 0, translateError(err)
	}
	prob, err := c.DocumentProbability(features, category)
	if err != nil {
		return 0, err
	}
	return prob * (float64(docs) / float64(total)), nil
}

// Classify scores every known category for the feature sequence and returns
// them ranked best first, truncated to the configured limit. The internal
// ranking sums log-probabilities so long documents keep a stable order even
// when their reported scores underflow toward 0. An untrained classifier
// returns an empty result.
func (c *Classifier) Classify(features []string, optFns ...ClassifyOption) ([]Result, error) {
	start := time.Now()
	results, err := c.classify(features, optFns...)
	c.metrics.RecordClassify(len(features), time.Since(start), err)
	c.logger.LogClassify(len(features), len(results), time.Since(start), err)
	return results, err
}

type scored struct {
	Result
	logProb float64
	valid   bool // false when the score is an exact 0
}

func (c *Classifier) classify(features []string, optFns ...ClassifyOption) ([]Result, error) {
	opts := classifyOptions{limit: DefaultClassifyLimit}
	for _, fn := range optFns {
		fn(&opts)
	}

	total, err := c.store.TotalCount()
	if err != nil {
		return nil, translateError(err)
	}
	if total == 0 {
		return nil, nil
	}

	categories, err := c.store.Categories()
	if err != nil {
		return nil, translateError(err)
	}

	ranked := make([]scored, 0, len(categories))
	for _, category := range categories {
		s, err := c.score(features, category, total)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].valid != ranked[j].valid {
			return ranked[i].valid
		}
		return ranked[i].logProb > ranked[j].logProb
	})

	if opts.limit > 0 && len(ranked) > opts.limit {
		ranked = ranked[:opts.limit]
	}

	results := make([]Result, len(ranked))
	for i, s := range ranked {
		results[i] = s.Result
	}
	return results, nil
}

// score computes one category's ranking entry in log-space.
func (c *Classifier) score(features []string, category string, total uint64) (scored, error) {
	s := scored{Result: Result{Category: category}}

	docs, err := c.store.CategoryCount(category)
	if err != nil {
		return s, translateError(err)
	}
	if docs == 0 {
		return s, nil
	}

	logProb := math.Log(float64(docs) / float64(total))
	for _, feature := range features {
		p, err := c.WeightedProbability(feature, category)
		if err != nil {
			return s, err
		}
		if p == 0 {
			return s, nil
		}
		logProb += math.Log(p)
	}

	s.logProb = logProb
	s.valid = true
	s.Score = math.Exp(logProb)
	return s, nil
}

// TotalCount returns the number of trained documents across all categories.
func (c *Classifier) TotalCount() (uint64, error) {
	n, err := c.store.TotalCount()
	return n, translateError(err)
}

// CategoryCount returns the number of documents trained for category.
func (c *Classifier) CategoryCount(category string) (uint64, error) {
	n, err := c.store.CategoryCount(category)
	return n, translateError(err)
}

// FeatureCategoryCount returns the occurrence count of feature within
// category.
func (c *Classifier) FeatureCategoryCount(feature, category string) (uint64, error) {
	n, err := c.store.FeatureCategoryCount(feature, category)
	return n, translateError(err)
}

// Categories lists every category the classifier has been trained on.
func (c *Classifier) Categories() ([]string, error) {
	categories, err := c.store.Categories()
	return categories, translateError(err)
}

// VerifyCounts recomputes the global document total from the per-category
// counters. A mismatch indicates a crash between the two bumps of a past
// training call.
func (c *Classifier) VerifyCounts() (countstore.CountReport, error) {
	report, err := countstore.Reconcile(c.store)
	return report, translateError(err)
}
