package countstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadgerStore_Counters(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	n, err := s.IncrFeatureCategory("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	n, err = s.IncrFeatureCategory("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(2), n)

	count, err := s.FeatureCategoryCount("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	count, err = s.FeatureCategoryCount("cheap", "ham")
	require.NoError(t, err)
	require.Equal(t, uint64(0), count)
}

func TestBadgerStore_FeatureTotalScansOnlyExactFeature(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.IncrFeatureCategory("cheap", "spam")
	require.NoError(t, err)
	_, err = s.IncrFeatureCategory("cheap", "ham")
	require.NoError(t, err)
	// Same leading bytes, different feature: must not be counted.
	_, err = s.IncrFeatureCategory("cheaper", "spam")
	require.NoError(t, err)

	total, err := s.FeatureTotal("cheap")
	require.NoError(t, err)
	require.Equal(t, uint64(2), total)

	total, err = s.FeatureTotal("meds")
	require.NoError(t, err)
	require.Equal(t, uint64(0), total)
}

func TestBadgerStore_CategoriesInKeyOrder(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	for _, category := range []string{"spam", "ham", "unsure"} {
		_, err := s.IncrCategory(category)
		require.NoError(t, err)
	}

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Equal(t, []string{"ham", "spam", "unsure"}, categories)

	total, err := s.TotalCount()
	require.NoError(t, err)
	require.Equal(t, uint64(3), total)
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.IncrFeatureCategory("hello", "ham")
	require.NoError(t, err)
	_, err = s.IncrCategory("ham")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenReadOnly(dir)
	require.NoError(t, err)
	defer s.Close()

	count, err := s.FeatureCategoryCount("hello", "ham")
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	total, err := s.TotalCount()
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
}

func TestBadgerStore_ReadOnlyRejectsWrites(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.IncrCategory("ham")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	ro, err := OpenReadOnly(dir)
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.IncrCategory("ham")
	require.ErrorIs(t, err, ErrReadOnly)

	_, err = ro.IncrFeatureCategory("hello", "ham")
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestBadgerStore_SecondWriterFailsToOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = Open(dir)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestBadgerStore_OpenMissingDirReadOnly(t *testing.T) {
	_, err := OpenReadOnly(t.TempDir() + "/does-not-exist")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestBadgerStore_ConcurrentIncrementsLoseNothing(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	const workers = 4
	const perWorker = 50

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := s.IncrFeatureCategory("cheap", "spam"); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, err := s.FeatureCategoryCount("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(workers*perWorker), count)
}
