package recipient

// Store exposes the read-only reference data used across all conversations.
type Store interface {
	// Find looks up a directory entry by recipient id.
	Find(id string) (Entry, bool)
	// Recommendation returns the static primary/secondary mapping for a
	// category.
	Recommendation(category string) (Recommendation, bool)
	// Category returns the catalog record for a category id.
	Category(id string) (Category, bool)
}

// MemoryStore implements Store over maps built once at startup. It is never
// mutated after construction, so unsynchronized concurrent reads are safe.
type MemoryStore struct {
	entries    map[string]Entry
	recs       map[string]Recommendation
	categories map[string]Category
}

// NewMemoryStore indexes the supplied reference data.
func NewMemoryStore(entries []Entry, recs map[string]Recommendation, categories []Category) *MemoryStore {
	s := &MemoryStore{
		entries:    make(map[string]Entry, len(entries)),
		recs:       make(map[string]Recommendation, len(recs)),
		categories: make(map[string]Category, len(categories)),
	}
	for _, e := range entries {
		s.entries[e.ID] = e
	}
	for category, rec := range recs {
		s.recs[category] = rec
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

// Find looks up a directory entry by recipient id.
func (s *MemoryStore) Find(id string) (Entry, bool) {
	e, ok := s.entries[id]
	return e, ok
}

// Recommendation returns the static fallback mapping for a category.
func (s *MemoryStore) Recommendation(category string) (Recommendation, bool) {
	r, ok := s.recs[category]
	return r, ok
}

// Category returns the catalog record for a category id.
func (s *MemoryStore) Category(id string) (Category, bool) {
	c, ok := s.categories[id]
	return c, ok
}
