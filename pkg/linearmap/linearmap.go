// Package linearmap implements a map backed by two parallel slices, one
// holding the keys and one holding the values. Lookups scan the key slice
// linearly, which makes every operation O(n), but for small numbers of
// entries the contiguous storage beats a hashtable on allocation churn and
// leaves iteration as fast as walking a slice. Entries are kept unsorted;
// removal swaps the last entry into the vacated slot, so relative order is
// not preserved across removals.
package linearmap

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/scottcagno/linmap"
)

// MatchFunc is a type definition for what a key match function should look
// like. It reports whether two keys address the same entry.
type MatchFunc[K any] func(a, b K) bool

// LinearMap represents a linear scan map implementation. The keys and values
// slices always have the same length and the pair at any index i is one
// logical entry; no two indices ever hold matching keys.
type LinearMap[K, V any] struct {
	match   MatchFunc[K]
	keys    []K
	values  []V
	version uint32
}

var _ linmap.Mapper[string, int] = (*LinearMap[string, int])(nil)

// New returns a new LinearMap matching keys with the == operator. The map
// does not allocate until the first entry is set.
func New[K comparable, V any]() *LinearMap[K, V] {
	return NewWithCapacity[K, V](0)
}

// NewWithCapacity returns a new LinearMap with room reserved for the
// specified number of entries, so no reallocation happens for the first
// capacity sets. Keys are matched with the == operator.
func NewWithCapacity[K comparable, V any](capacity int) *LinearMap[K, V] {
	return newLinearMap[K, V](func(a, b K) bool { return a == b }, capacity)
}

// NewOrdered returns a new LinearMap matching keys by total order, treating
// two keys as the same entry when they compare equal.
func NewOrdered[K cmp.Ordered, V any]() *LinearMap[K, V] {
	return NewOrderedWithCapacity[K, V](0)
}

// NewOrderedWithCapacity is the pre-sized variant of NewOrdered.
func NewOrderedWithCapacity[K cmp.Ordered, V any](capacity int) *LinearMap[K, V] {
	return newLinearMap[K, V](func(a, b K) bool { return cmp.Compare(a, b) == 0 }, capacity)
}

// NewMatcher returns a new LinearMap using the supplied match function to
// decide key identity. This is the hook for lookups that should not use the
// key type's own equality, such as case folded strings.
func NewMatcher[K, V any](match MatchFunc[K]) *LinearMap[K, V] {
	return NewMatcherWithCapacity[K, V](match, 0)
}

// NewMatcherWithCapacity is the pre-sized variant of NewMatcher.
func NewMatcherWithCapacity[K, V any](match MatchFunc[K], capacity int) *LinearMap[K, V] {
	return newLinearMap[K, V](match, capacity)
}

// newLinearMap is the internal variant of the previous constructors
func newLinearMap[K, V any](match MatchFunc[K], capacity int) *LinearMap[K, V] {
	m := &LinearMap[K, V]{
		match: match,
	}
	if capacity > 0 {
		m.keys = make([]K, 0, capacity)
		m.values = make([]V, 0, capacity)
	}
	return m
}

// find returns the index of the entry matching the key, or false if none
// could be found. It is the shared primitive under Get, Set, Del and Has.
func (m *LinearMap[K, V]) find(key K) (int, bool) {
	if m.match == nil {
		panic("linearmap: uninitialized map, use New, NewOrdered or NewMatcher")
	}
	// search the keys linearly; keys are never duplicated, so the first
	// match is also the only match
	for i := 0; i < len(m.keys); i++ {
		if m.match(m.keys[i], key) {
			return i, true
		}
	}
	return -1, false
}

// Get returns the value for a given key, or returns false if none could
// be found
func (m *LinearMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.find(key); ok {
		return m.values[i], true
	}
	return *new(V), false
}

// GetMut returns a pointer to the value for a given key so it can be
// updated in place, or returns false if none could be found. The pointer
// stays valid until the next length changing operation on the map.
func (m *LinearMap[K, V]) GetMut(key K) (*V, bool) {
	if i, ok := m.find(key); ok {
		return &m.values[i], true
	}
	return nil, false
}

// GetKeyValue returns the stored key along with the value for a given key,
// or returns false if none could be found. The returned key is the one the
// map holds, which may differ from the argument under a custom matcher.
func (m *LinearMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i, ok := m.find(key); ok {
		return m.keys[i], m.values[i], true
	}
	return *new(K), *new(V), false
}

// Has returns true if the map contains an entry for the specified key
func (m *LinearMap[K, V]) Has(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Set inserts a key value pair and returns the previous value, or false.
// When the key is already present only the value is replaced; the stored
// key keeps its identity even if the new key is distinguishable under the
// active matcher.
func (m *LinearMap[K, V]) Set(key K, value V) (V, bool) {
	if i, ok := m.find(key); ok {
		prev := m.values[i]
		m.values[i] = value
		return prev, true
	}
	// new entry, append to both slices together
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	m.version++
	return *new(V), false
}

// GetOrSet returns the existing value for the key if present. Otherwise it
// stores the given value and returns it. The bool is true when the value
// was already present.
func (m *LinearMap[K, V]) GetOrSet(key K, value V) (V, bool) {
	if i, ok := m.find(key); ok {
		return m.values[i], true
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	m.version++
	return value, false
}

// Del removes the entry for a given key and returns the deleted value, or
// false. The last entry is swapped into the removed slot, so the relative
// order of the remaining entries changes.
func (m *LinearMap[K, V]) Del(key K) (V, bool) {
	i, ok := m.find(key)
	if !ok {
		return *new(V), false
	}
	val := m.values[i]
	// swap-remove at the same index in both slices so the pairing
	// between positions stays intact
	last := len(m.keys) - 1
	m.keys[i] = m.keys[last]
	m.values[i] = m.values[last]
	m.keys[last] = *new(K)
	m.values[last] = *new(V)
	m.keys = m.keys[:last]
	m.values = m.values[:last]
	m.version++
	return val, true
}

// Append moves every entry out of other into m. Keys already present in m
// keep a single entry and take the incoming value. Afterwards other is
// empty but keeps its allocated capacity.
func (m *LinearMap[K, V]) Append(other *LinearMap[K, V]) {
	// drain from the back; entry order is unspecified anyway and popping
	// the last slot avoids shifting
	for len(other.keys) > 0 {
		key, value := other.popLast()
		m.Set(key, value)
	}
}

// popLast removes and returns the final entry, zeroing the vacated slots
func (m *LinearMap[K, V]) popLast() (K, V) {
	last := len(m.keys) - 1
	key, value := m.keys[last], m.values[last]
	m.keys[last] = *new(K)
	m.values[last] = *new(V)
	m.keys = m.keys[:last]
	m.values = m.values[:last]
	m.version++
	return key, value
}

// Clear removes all entries from the map, keeping the allocated memory
// for reuse
func (m *LinearMap[K, V]) Clear() {
	clear(m.keys) // drop anything the backing arrays still reference
	clear(m.values)
	m.keys = m.keys[:0]
	m.values = m.values[:0]
	m.version++
}

// Len returns the number of entries currently in the map
func (m *LinearMap[K, V]) Len() int {
	return len(m.keys)
}

// IsEmpty returns true if the map holds no entries
func (m *LinearMap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

// Cap returns the number of entries the map can hold without reallocating
func (m *LinearMap[K, V]) Cap() int {
	return cap(m.keys)
}

// Clone returns a shallow copy of the map using the same match function
func (m *LinearMap[K, V]) Clone() *LinearMap[K, V] {
	c := &LinearMap[K, V]{
		match:  m.match,
		keys:   make([]K, len(m.keys)),
		values: make([]V, len(m.values)),
	}
	copy(c.keys, m.keys)
	copy(c.values, m.values)
	return c
}

// Range takes an iterator function and ranges the map for as long as the
// function continues to return true. Range is not safe to use while
// performing a set or delete operation on the same map!
func (m *LinearMap[K, V]) Range(it func(key K, value V) bool) {
	for i := 0; i < len(m.keys); i++ {
		if !it(m.keys[i], m.values[i]) {
			return
		}
	}
}

func (m *LinearMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("linearmap[")
	for i := 0; i < len(m.keys); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", m.keys[i], m.values[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
