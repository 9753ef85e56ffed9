package countstore

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store. It is useful for tests and for
// short-lived classifiers that don't need persistence. Safe for concurrent
// use.
type MemoryStore struct {
	mu       sync.RWMutex
	features map[string]map[string]uint64 // feature -> category -> count
	docs     map[string]uint64            // category -> document count
	total    uint64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		features: make(map[string]map[string]uint64),
		docs:     make(map[string]uint64),
	}
}

// IncrFeatureCategory implements Store.
func (m *MemoryStore) IncrFeatureCategory(feature, category string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byCategory, ok := m.features[feature]
	if !ok {
		byCategory = make(map[string]uint64)
		m.features[feature] = byCategory
	}
	byCategory[category]++
	return byCategory[category], nil
}

// IncrCategory implements Store.
func (m *MemoryStore) IncrCategory(category string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	m.docs[category]++
	return m.docs[category], nil
}

// FeatureCategoryCount implements Store.
func (m *MemoryStore) FeatureCategoryCount(feature, category string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.features[feature][category], nil
}

// CategoryCount implements Store.
func (m *MemoryStore) CategoryCount(category string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.docs[category], nil
}

// TotalCount implements Store.
func (m *MemoryStore) TotalCount() (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.total, nil
}

// FeatureTotal implements Store.
func (m *MemoryStore) FeatureTotal(feature string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total uint64
	for _, count := range m.features[feature] {
		total += count
	}
	return total, nil
}

// Categories implements Store. The natural order of a MemoryStore is sorted
// label order.
func (m *MemoryStore) Categories() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := make([]string, 0, len(m.docs))
	for category := range m.docs {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Close implements Store. It is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
