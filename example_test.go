package bayesgo_test

import (
	"fmt"

	"github.com/hupe1980/bayesgo"
	"github.com/hupe1980/bayesgo/countstore"
	"github.com/hupe1980/bayesgo/feature"
)

func Example() {
	// Use bayesgo.Open(dir) instead for a model that persists on disk.
	clf := bayesgo.New(countstore.NewMemoryStore())
	defer clf.Close()

	if err := clf.Train(feature.Extract("cheap meds shipped overnight"), "spam"); err != nil {
		panic(err)
	}
	if err := clf.Train(feature.Extract("lunch with your friend tomorrow"), "ham"); err != nil {
		panic(err)
	}

	results, err := clf.Classify(feature.Extract("cheap meds for lunch"), bayesgo.WithLimit(1))
	if err != nil {
		panic(err)
	}
	fmt.Println(results[0].Category)
	// Output: spam
}
