package bayesgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bayesgo"
)

func TestLifecycle_TrainCloseReopenClassify(t *testing.T) {
	dir := t.TempDir()

	clf, err := bayesgo.Open(dir)
	require.NoError(t, err)

	require.NoError(t, clf.Train([]string{"cheap", "meds", "now"}, "spam"))
	require.NoError(t, clf.Train([]string{"hello", "friend"}, "ham"))
	require.NoError(t, clf.Close())

	// Reopen read-only: the trained model must be fully visible.
	clf, err = bayesgo.Open(dir, bayesgo.ReadOnly())
	require.NoError(t, err)
	defer clf.Close()

	total, err := clf.TotalCount()
	require.NoError(t, err)
	require.Equal(t, uint64(2), total)

	results, err := clf.Classify([]string{"cheap", "meds"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "spam", results[0].Category)

	err = clf.Train([]string{"more"}, "spam")
	require.ErrorIs(t, err, bayesgo.ErrReadOnly)
}

func TestLifecycle_SecondWriterRejected(t *testing.T) {
	dir := t.TempDir()

	clf, err := bayesgo.Open(dir)
	require.NoError(t, err)
	defer clf.Close()

	_, err = bayesgo.Open(dir)
	require.ErrorIs(t, err, bayesgo.ErrStorageUnavailable)
}

func TestLifecycle_CloseIsNilSafe(t *testing.T) {
	var clf *bayesgo.Classifier
	require.NoError(t, clf.Close())
}
