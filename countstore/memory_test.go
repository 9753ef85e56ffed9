package countstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Counters(t *testing.T) {
	s := NewMemoryStore()

	n, err := s.IncrFeatureCategory("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	n, err = s.IncrFeatureCategory("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(2), n)

	n, err = s.IncrFeatureCategory("cheap", "ham")
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	count, err := s.FeatureCategoryCount("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	// Absent counters read as zero.
	count, err = s.FeatureCategoryCount("meds", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(0), count)

	total, err := s.FeatureTotal("cheap")
	require.NoError(t, err)
	require.Equal(t, uint64(3), total)
}

func TestMemoryStore_DocumentCounts(t *testing.T) {
	s := NewMemoryStore()

	n, err := s.IncrCategory("spam")
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	_, err = s.IncrCategory("spam")
	require.NoError(t, err)
	_, err = s.IncrCategory("ham")
	require.NoError(t, err)

	total, err := s.TotalCount()
	require.NoError(t, err)
	require.Equal(t, uint64(3), total)

	count, err := s.CategoryCount("spam")
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Equal(t, []string{"ham", "spam"}, categories)
}

func TestMemoryStore_ReadsAreIdempotent(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.IncrFeatureCategory("hello", "ham")
	require.NoError(t, err)
	_, err = s.IncrCategory("ham")
	require.NoError(t, err)

	a, err := s.FeatureTotal("hello")
	require.NoError(t, err)
	b, err := s.FeatureTotal("hello")
	require.NoError(t, err)
	require.Equal(t, a, b)

	t1, err := s.TotalCount()
	require.NoError(t, err)
	t2, err := s.TotalCount()
	require.NoError(t, err)
	require.Equal(t, t1, t2)
}

func TestMemoryStore_ConcurrentIncrementsLoseNothing(t *testing.T) {
	s := NewMemoryStore()

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := s.IncrFeatureCategory("cheap", "spam")
				require.NoError(t, err)
				_, err = s.IncrCategory("spam")
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	count, err := s.FeatureCategoryCount("cheap", "spam")
	require.NoError(t, err)
	require.Equal(t, uint64(workers*perWorker), count)

	report, err := Reconcile(s)
	require.NoError(t, err)
	require.True(t, report.Consistent())
	require.Equal(t, uint64(workers*perWorker), report.Total)
}

func TestReconcile_ReportsPerCategory(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 3; i++ {
		_, err := s.IncrCategory("spam")
		require.NoError(t, err)
	}
	_, err := s.IncrCategory("ham")
	require.NoError(t, err)

	report, err := Reconcile(s)
	require.NoError(t, err)
	require.True(t, report.Consistent())
	require.Equal(t, uint64(4), report.Total)
	require.Equal(t, uint64(4), report.CategorySum)
	require.Equal(t, map[string]uint64{"spam": 3, "ham": 1}, report.PerCategory)
}
