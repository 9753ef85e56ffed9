// Package bayesgo provides a persistent naive Bayes text classifier for Go.
//
// The classifier learns a statistical association between features
// (normalized tokens) and categories from labeled training documents,
// stores the counts durably in an embedded Badger database, and ranks the
// most probable categories for new documents.
//
// # Quick Start
//
// Open a model directory, train, classify:
//
//	clf, err := bayesgo.Open("./model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer clf.Close()
//
//	_ = clf.Train(feature.Extract("cheap meds shipped overnight"), "spam")
//	_ = clf.Train(feature.Extract("lunch with an old friend"), "ham")
//
//	results, _ := clf.Classify(feature.Extract("cheap lunch meds"))
//	for _, r := range results {
//	    fmt.Printf("%s\t%g\n", r.Category, r.Score)
//	}
//
// A classifier is opened in one of two modes, fixed for its lifetime:
// read-write (the default, single writer per model directory) or read-only
// via the ReadOnly option, which any number of processes may hold at once.
//
// # Scoring
//
// Each feature's raw per-category frequency is smoothed toward a neutral
// 0.5 in proportion to how rarely the feature has been seen overall, the
// smoothed probabilities are multiplied into an unnormalized document
// likelihood, and that likelihood is weighted by the category's share of
// all trained documents. Classify ranks categories by this score, summing
// log-probabilities internally so the ordering survives underflow on long
// documents.
//
// Feature extraction is deliberately outside the core: the feature
// subpackage provides the default whitespace/lower-case/length-window
// tokenizer, and the corpus subpackage drives training and evaluation over
// labeled directory trees.
package bayesgo
