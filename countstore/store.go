package countstore

import "errors"

var (
	// ErrReadOnly is returned when a write is attempted on a store that was
	// opened in read-only mode.
	ErrReadOnly = errors.New("countstore: store is read-only")

	// ErrUnavailable is returned when the underlying storage cannot be
	// opened, for example because the directory is missing, the process
	// lacks permission, or another writer holds the lock.
	ErrUnavailable = errors.New("countstore: storage unavailable")
)

// Store is a durable counter store for naive Bayes training data. It tracks
// three kinds of monotonic counters: per-feature-per-category occurrence
// counts, per-category document counts, and a single global document count.
//
// Counters come into existence on first increment; reads of absent counters
// return 0. Every count reported is the sum of all prior increments to that
// key, regardless of which caller performed them.
type Store interface {
	// IncrFeatureCategory atomically adds 1 to the occurrence count of
	// feature within category and returns the post-increment value.
	IncrFeatureCategory(feature, category string) (uint64, error)

	// IncrCategory adds 1 to the global document count and then 1 to the
	// document count of category, returning the new category count. The two
	// bumps are individually atomic but not wrapped in a transaction; a
	// crash between them leaves the global total one ahead of the
	// per-category sum until the next Reconcile.
	IncrCategory(category string) (uint64, error)

	// FeatureCategoryCount returns the occurrence count of feature within
	// category, 0 if never incremented.
	FeatureCategoryCount(feature, category string) (uint64, error)

	// CategoryCount returns the number of documents trained for category,
	// 0 if never incremented.
	CategoryCount(category string) (uint64, error)

	// TotalCount returns the number of documents trained across all
	// categories, 0 for an empty store.
	TotalCount() (uint64, error)

	// FeatureTotal returns the occurrence count of feature summed over all
	// categories. Cost is proportional to the number of distinct categories
	// the feature has ever co-occurred with.
	FeatureTotal(feature string) (uint64, error)

	// Categories enumerates every category that has ever been trained, in
	// the store's natural key order.
	Categories() ([]string, error)

	// Close releases the store, flushing buffered writes and dropping any
	// file lock.
	Close() error
}

// CountReport is the result of a Reconcile pass over a store.
type CountReport struct {
	// Total is the global document counter as stored.
	Total uint64
	// CategorySum is the total recomputed from the per-category counters.
	CategorySum uint64
	// PerCategory holds the individual category document counts.
	PerCategory map[string]uint64
}

// Consistent reports whether the stored total matches the recomputed sum.
func (r CountReport) Consistent() bool {
	return r.Total == r.CategorySum
}

// Reconcile recomputes the global document total from the per-category
// counters and returns both numbers. A mismatch indicates a crash between
// the two bumps of IncrCategory.
func Reconcile(s Store) (CountReport, error) {
	report := CountReport{PerCategory: make(map[string]uint64)}

	total, err := s.TotalCount()
	if err != nil {
		return report, err
	}
	report.Total = total

	categories, err := s.Categories()
	if err != nil {
		return report, err
	}
	for _, category := range categories {
		n, err := s.CategoryCount(category)
		if err != nil {
			return report, err
		}
		report.PerCategory[category] = n
		report.CategorySum += n
	}
	return report, nil
}
