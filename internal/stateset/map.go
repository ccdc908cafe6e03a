package stateset

// Map assigns ids to distinct state sets.
//
// Entries are bucketed by Hash and resolved with Equal, so colliding
// sets keep their own ids.
type Map struct {
	buckets map[uint64][]entry
	size    int
}

type entry struct {
	key   StateSet
	value uint32
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{buckets: make(map[uint64][]entry)}
}

// Get returns the id stored for key.
func (m *Map) Get(key StateSet) (uint32, bool) {
	for _, e := range m.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	return 0, false
}

// Put stores value for key and reports whether key was new.
// An existing entry is overwritten. The key is cloned.
func (m *Map) Put(key StateSet, value uint32) bool {
	h := key.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].key.Equal(key) {
			bucket[i].value = value
			return false
		}
	}
	m.buckets[h] = append(bucket, entry{key: key.Clone(), value: value})
	m.size++
	return true
}

// Len returns the number of distinct keys.
func (m *Map) Len() int {
	return m.size
}
